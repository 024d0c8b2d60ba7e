// Package shell derives the navigation bar from the session.
package shell

import "github.com/kidandcat/promanager/internal/session"

type State int

const (
	Anonymous State = iota
	Member
	Admin
)

func (s State) String() string {
	switch s {
	case Member:
		return "member"
	case Admin:
		return "admin"
	}
	return "anonymous"
}

func StateOf(s session.Session, ok bool) State {
	switch {
	case !ok:
		return Anonymous
	case s.IsAdmin():
		return Admin
	}
	return Member
}

type LinkKind int

const (
	Nav LinkKind = iota
	Button
	Profile
	Logout
	Bell
)

type Link struct {
	Label string
	Path  string
	Kind  LinkKind
}

const (
	LabelHome       = "الرئيسية"
	LabelLogin      = "دخول"
	LabelRegister   = "ابدأ الآن"
	LabelAdd        = "إضافة مشروع"
	LabelMine       = "مشاريعي"
	LabelDashboard  = "لوحة التحكم"
	LabelProfile    = "الملف الشخصي"
	LabelLogout     = "تسجيل الخروج"
	LabelActivities = "آخر النشاطات"
)

// Links lists the navigation entries for st, in display order.
func Links(st State) []Link {
	home := Link{Label: LabelHome, Path: "/", Kind: Nav}
	if st == Anonymous {
		return []Link{
			home,
			{Label: LabelLogin, Path: "/login", Kind: Nav},
			{Label: LabelRegister, Path: "/register", Kind: Button},
		}
	}
	links := []Link{home}
	if st == Admin {
		links = append(links,
			Link{Label: LabelActivities, Kind: Bell},
			Link{Label: LabelDashboard, Path: "/admin/dashboard", Kind: Button},
		)
	}
	return append(links,
		Link{Label: LabelAdd, Path: "/add-project", Kind: Nav},
		Link{Label: LabelMine, Path: "/my-projects", Kind: Nav},
		Link{Label: LabelProfile, Path: "/profile", Kind: Profile},
		Link{Label: LabelLogout, Kind: Logout},
	)
}

// Polls reports whether st shows the activity feed and keeps it fresh.
func Polls(st State) bool { return st == Admin }
