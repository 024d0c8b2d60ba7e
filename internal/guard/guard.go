// Package guard decides whether the current session may open a screen.
package guard

import "github.com/kidandcat/promanager/internal/session"

type Requirement int

const (
	Public Requirement = iota
	Authenticated
	Admin
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

const (
	LoginPath     = "/login"
	ForbiddenPath = "/"
)

// Decide is pure: it never touches storage. ok is false when there is no
// session.
func Decide(s session.Session, ok bool, req Requirement) Decision {
	switch req {
	case Public:
		return Allow
	case Authenticated:
		if !ok {
			return RedirectLogin
		}
		return Allow
	case Admin:
		if !ok {
			return RedirectLogin
		}
		if !s.IsAdmin() {
			return Forbidden
		}
		return Allow
	}
	return RedirectLogin
}

// Target is where a denied visitor is sent, or "" when d is Allow.
func Target(d Decision) string {
	switch d {
	case RedirectLogin:
		return LoginPath
	case Forbidden:
		return ForbiddenPath
	}
	return ""
}
