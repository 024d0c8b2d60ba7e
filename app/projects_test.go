package main

import (
	"errors"
	"testing"

	"github.com/kidandcat/promanager/internal/api"
	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
	"github.com/kidandcat/promanager/internal/validate"
)

func TestCanManage(t *testing.T) {
	owner := models.User{ID: "u1", Role: models.RoleMember}
	p := models.Project{ID: "p1", Owner: &owner}

	tests := []struct {
		name string
		sess session.Session
		ok   bool
		want bool
	}{
		{"anonymous", session.Session{}, false, false},
		{"owner", session.Session{Token: "t", User: owner}, true, true},
		{"other member", session.Session{Token: "t", User: models.User{ID: "u2", Role: models.RoleMember}}, true, false},
		{"admin", session.Session{Token: "t", User: models.User{ID: "a", Role: models.RoleAdmin}}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canManage(tt.sess, tt.ok, p); got != tt.want {
				t.Errorf("canManage = %v, want %v", got, tt.want)
			}
		})
	}

	orphan := models.Project{ID: "p2"}
	if canManage(session.Session{Token: "t", User: owner}, true, orphan) {
		t.Error("member managed a project without owner")
	}
}

func TestFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", &validate.Error{Field: "deadline", Message: validate.MsgDeadlineRequired}, validate.MsgDeadlineRequired},
		{"server message", &api.Error{Status: 400, Message: "البريد مستخدم"}, "البريد مستخدم"},
		{"no message", &api.Error{Status: 500}, "fallback"},
		{"transport", errors.New("dial tcp: refused"), "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure(tt.err, "fallback"); got != tt.want {
				t.Errorf("failure = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusClass(t *testing.T) {
	if got := statusClass(models.StatusCompleted); got != "status-badge completed" {
		t.Errorf("completed = %q", got)
	}
	if got := statusClass(models.StatusInProgress); got != "status-badge pending" {
		t.Errorf("in progress = %q", got)
	}
}
