// Package media turns the image paths the API stores into URLs a browser can
// load.
package media

import (
	"net/url"
	"strings"
)

const (
	AvatarPlaceholder = "/default-avatar.png"
	CoverPlaceholder  = "https://placehold.co/400x300?text=No+Image"
	DetailPlaceholder = "https://placehold.co/800x400?text=No+Image+Available"
)

type Resolver struct {
	// Base is the asset origin, e.g. http://localhost:5000.
	Base string
}

func (r Resolver) prefix() string {
	return strings.TrimRight(r.Base, "/") + "/uploads/"
}

// Resolve maps a stored path to a URL. Blank paths give placeholder,
// absolute URLs pass through, anything else keeps only its file name and is
// served from <Base>/uploads/.
func (r Resolver) Resolve(path, placeholder string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return placeholder
	}
	if isAbsolute(path) {
		return path
	}
	if strings.HasPrefix(path, r.prefix()) {
		return path
	}
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return placeholder
	}
	return r.prefix() + url.PathEscape(name)
}

func (r Resolver) Avatar(path string) string { return r.Resolve(path, AvatarPlaceholder) }
func (r Resolver) Cover(path string) string  { return r.Resolve(path, CoverPlaceholder) }
func (r Resolver) Detail(path string) string { return r.Resolve(path, DetailPlaceholder) }

// NavAvatar is the avatar shown in the navigation bar: the stored image, or
// a generated initials image for name.
func (r Resolver) NavAvatar(path, name string) string {
	if strings.TrimSpace(path) != "" {
		return r.Resolve(path, AvatarPlaceholder)
	}
	return InitialsAvatar(name)
}

func InitialsAvatar(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "User"
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}

func isAbsolute(p string) bool {
	lower := strings.ToLower(p)
	for _, s := range []string{"http://", "https://", "data:", "blob:"} {
		if strings.HasPrefix(lower, s) {
			return true
		}
	}
	return false
}
