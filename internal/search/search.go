// Package search filters lists in memory for the gallery and admin pages.
package search

import (
	"strings"

	"github.com/kidandcat/promanager/internal/models"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// Projects keeps the projects whose title or description contains query
// (case-insensitive) and whose category matches. An empty category or
// models.CategoryAll matches every project. The input is not modified.
func Projects(list []models.Project, query string, category models.Category) []models.Project {
	q := normalize(query)
	out := make([]models.Project, 0, len(list))
	for _, p := range list {
		if category != "" && category != models.CategoryAll && p.Category != category {
			continue
		}
		if q != "" && !contains(p.Title, q) && !contains(p.Description, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Users keeps the users whose name or email contains query.
func Users(list []models.User, query string) []models.User {
	q := normalize(query)
	out := make([]models.User, 0, len(list))
	for _, u := range list {
		if q == "" || contains(u.Name, q) || contains(u.Email, q) {
			out = append(out, u)
		}
	}
	return out
}

// Remove returns list without the project with id.
func Remove(list []models.Project, id string) []models.Project {
	out := make([]models.Project, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// RemoveUser returns list without the user with id.
func RemoveUser(list []models.User, id string) []models.User {
	out := make([]models.User, 0, len(list))
	for _, u := range list {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

// SetActive returns a copy of list where only the user with id has its
// active flag set to active.
func SetActive(list []models.User, id string, active bool) []models.User {
	out := make([]models.User, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == id {
			out[i].IsActive = active
		}
	}
	return out
}
