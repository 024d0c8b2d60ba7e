package notify

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
)

const DismissedKey = "clearedNotifications"

// Dismissed is the per-browser denylist of activity keys the admin cleared
// from the bell. The server feed is never modified.
type Dismissed struct {
	kv session.KV
	mu sync.Mutex
}

func NewDismissed(kv session.KV) *Dismissed {
	return &Dismissed{kv: kv}
}

// load reads the stored list. Unreadable data reads as empty.
func (d *Dismissed) load() map[string]bool {
	set := map[string]bool{}
	raw, ok := d.kv.Get(DismissedKey)
	if !ok || raw == "" {
		return set
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return set
	}
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (d *Dismissed) Has(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()[key]
}

// Filter returns the activities not on the denylist.
func (d *Dismissed) Filter(list []models.Activity) []models.Activity {
	d.mu.Lock()
	set := d.load()
	d.mu.Unlock()

	out := make([]models.Activity, 0, len(list))
	for _, a := range list {
		if !set[a.Key()] {
			out = append(out, a)
		}
	}
	return out
}

// DismissAll adds every activity in list to the denylist.
func (d *Dismissed) DismissAll(list []models.Activity) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	set := d.load()
	ids := make([]string, 0, len(set)+len(list))
	for id := range set {
		ids = append(ids, id)
	}
	for _, a := range list {
		if k := a.Key(); !set[k] {
			set[k] = true
			ids = append(ids, k)
		}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode dismissed: %w", err)
	}
	if err := d.kv.Set(DismissedKey, string(b)); err != nil {
		return fmt.Errorf("persist dismissed: %w", err)
	}
	return nil
}
