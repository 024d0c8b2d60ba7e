package shell

import (
	"testing"

	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
)

func labels(ls []Link) map[string]bool {
	m := map[string]bool{}
	for _, l := range ls {
		m[l.Label] = true
	}
	return m
}

func TestStateFollowsStore(t *testing.T) {
	store := session.NewStore(session.NewMemoryKV())
	var states []State
	cancel := store.Subscribe(func(s session.Session, ok bool) {
		states = append(states, StateOf(s, ok))
	})
	defer cancel()

	store.Write(session.Session{Token: "t1", User: models.User{ID: "u1", Name: "A", Role: models.RoleMember}})
	store.Write(session.Session{Token: "t2", User: models.User{ID: "u2", Name: "R", Role: models.RoleAdmin}})
	store.Clear()

	want := []State{Member, Admin, Anonymous}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("states[%d] = %v, want %v", i, states[i], want[i])
		}
	}
}

func TestLinks(t *testing.T) {
	anon := labels(Links(Anonymous))
	if !anon[LabelLogin] || !anon[LabelRegister] || anon[LabelMine] || anon[LabelProfile] {
		t.Errorf("anonymous links = %v", anon)
	}

	member := labels(Links(Member))
	if !member[LabelMine] || !member[LabelProfile] || !member[LabelAdd] || !member[LabelLogout] {
		t.Errorf("member links = %v", member)
	}
	if member[LabelLogin] || member[LabelRegister] || member[LabelDashboard] || member[LabelActivities] {
		t.Errorf("member links leak = %v", member)
	}

	admin := labels(Links(Admin))
	for l := range member {
		if !admin[l] {
			t.Errorf("admin lacks member link %q", l)
		}
	}
	if !admin[LabelDashboard] || !admin[LabelActivities] {
		t.Errorf("admin links = %v", admin)
	}

	if Polls(Member) || !Polls(Admin) {
		t.Error("only admins poll")
	}
}
