package guard

import (
	"testing"

	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
)

func TestDecide(t *testing.T) {
	member := session.Session{Token: "t", User: models.User{ID: "u1", Role: models.RoleMember}}
	admin := session.Session{Token: "t", User: models.User{ID: "u2", Role: models.RoleAdmin}}

	tests := []struct {
		name string
		sess session.Session
		ok   bool
		req  Requirement
		want Decision
	}{
		{"public anonymous", session.Session{}, false, Public, Allow},
		{"auth anonymous", session.Session{}, false, Authenticated, RedirectLogin},
		{"auth member", member, true, Authenticated, Allow},
		{"admin anonymous", session.Session{}, false, Admin, RedirectLogin},
		{"admin member", member, true, Admin, Forbidden},
		{"admin admin", admin, true, Admin, Allow},
		{"unknown requirement", admin, true, Requirement(99), RedirectLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.sess, tt.ok, tt.req); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTarget(t *testing.T) {
	if Target(Allow) != "" || Target(RedirectLogin) != "/login" || Target(Forbidden) != "/" {
		t.Error("unexpected targets")
	}
}
