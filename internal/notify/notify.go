// Package notify carries transient notices (toasts) from pages to the
// toaster and keeps the admin's dismissed-activity list.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Lifetime is how long a notice stays on screen.
const Lifetime = 2 * time.Second

type Notice struct {
	ID   int
	Kind Kind
	Text string
	At   time.Time
}

// Expires is when the notice leaves the screen.
func (n Notice) Expires() time.Time { return n.At.Add(Lifetime) }

// Bus fans notices out to toasters. It also remembers the notices that are
// still on screen so a toaster mounted by the next page picks them up.
type Bus struct {
	now func() time.Time

	mu     sync.Mutex
	nextID int
	subID  int
	subs   map[int]func(Notice)
	recent []Notice
}

func NewBus() *Bus {
	return &Bus{now: time.Now, subs: make(map[int]func(Notice))}
}

// Publish delivers a notice to every subscriber on the caller's goroutine
// and returns it.
func (b *Bus) Publish(kind Kind, text string) Notice {
	b.mu.Lock()
	b.nextID++
	n := Notice{ID: b.nextID, Kind: kind, Text: text, At: b.now()}
	b.recent = append(live(b.recent, n.At), n)
	subs := make([]func(Notice), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
	return n
}

func (b *Bus) Success(text string) Notice { return b.Publish(Success, text) }
func (b *Bus) Error(text string) Notice   { return b.Publish(Error, text) }
func (b *Bus) Warn(text string) Notice    { return b.Publish(Warning, text) }
func (b *Bus) Info(text string) Notice    { return b.Publish(Info, text) }

func (b *Bus) Subscribe(fn func(Notice)) (cancel func()) {
	b.mu.Lock()
	id := b.subID
	b.subID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Active returns the notices published less than Lifetime ago, oldest first.
func (b *Bus) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recent = live(b.recent, b.now())
	return append([]Notice(nil), b.recent...)
}

func live(list []Notice, now time.Time) []Notice {
	out := list[:0]
	for _, n := range list {
		if now.Before(n.Expires()) {
			out = append(out, n)
		}
	}
	return out
}
