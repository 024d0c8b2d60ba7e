package db

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/kidandcat/promanager/internal/models"
)

type User struct {
	models.User
	PasswordHash string
}

type Project = models.Project

// Users

const userCols = "id, name, email, password_hash, role, avatar, is_active, created_at"

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Avatar, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	u.Role = models.Role(role)
	return &u, nil
}

func (s *Store) CreateUser(name, email, passwordHash string, role models.Role) (*User, error) {
	u := &User{
		User: models.User{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     strings.ToLower(strings.TrimSpace(email)),
			Role:      role,
			IsActive:  true,
			CreatedAt: s.stamp(),
		},
		PasswordHash: passwordHash,
	}
	_, err := s.db.Exec(
		"INSERT INTO users ("+userCols+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.Avatar, u.IsActive, u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", mapErr(err))
	}
	return u, nil
}

func (s *Store) UserByID(id string) (*User, error) {
	return scanUser(s.db.QueryRow("SELECT "+userCols+" FROM users WHERE id = ?", id))
}

func (s *Store) UserByEmail(email string) (*User, error) {
	return scanUser(s.db.QueryRow("SELECT "+userCols+" FROM users WHERE email = ?",
		strings.ToLower(strings.TrimSpace(email))))
}

func (s *Store) ListUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT " + userCols + " FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u.User)
	}
	return users, rows.Err()
}

// UpdateProfile sets name and email. An empty avatar keeps the current one.
func (s *Store) UpdateProfile(id, name, email, avatar string) (*User, error) {
	res, err := s.db.Exec(
		`UPDATE users SET name = ?, email = ?, avatar = CASE WHEN ? = '' THEN avatar ELSE ? END WHERE id = ?`,
		name, strings.ToLower(strings.TrimSpace(email)), avatar, avatar, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", mapErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.UserByID(id)
}

// ToggleUser flips is_active and returns the new value.
func (s *Store) ToggleUser(id string) (bool, error) {
	res, err := s.db.Exec("UPDATE users SET is_active = 1 - is_active WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("toggle user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, ErrNotFound
	}
	u, err := s.UserByID(id)
	if err != nil {
		return false, err
	}
	return u.IsActive, nil
}

func (s *Store) DeleteUser(id string) error {
	res, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// PromoteAdmin gives an existing account the admin role. It reports false
// when no account has that email.
func (s *Store) PromoteAdmin(email string) (bool, error) {
	res, err := s.db.Exec("UPDATE users SET role = ? WHERE email = ?",
		string(models.RoleAdmin), strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false, fmt.Errorf("promote admin: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Projects

const projectSelect = `SELECT p.id, p.title, p.description, p.deadline, p.image, p.status, p.priority,
	p.category, p.created_at, u.id, u.name, u.email, u.avatar
	FROM projects p JOIN users u ON u.id = p.user_id`

func scanProject(row interface{ Scan(...any) error }) (*Project, error) {
	var p Project
	var status, priority, category string
	owner := &models.User{}
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Deadline, &p.Image, &status, &priority,
		&category, &p.CreatedAt, &owner.ID, &owner.Name, &owner.Email, &owner.Avatar)
	if err != nil {
		return nil, mapErr(err)
	}
	p.Status = models.Status(status)
	p.Priority = models.Priority(priority)
	p.Category = models.Category(category)
	p.Owner = owner
	return &p, nil
}

func (s *Store) queryProjects(where string, args ...any) ([]Project, error) {
	rows, err := s.db.Query(projectSelect+" "+where+" ORDER BY p.created_at DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *Store) ListProjects() ([]Project, error) {
	return s.queryProjects("")
}

func (s *Store) ProjectsByOwner(userID string) ([]Project, error) {
	return s.queryProjects("WHERE p.user_id = ?", userID)
}

func (s *Store) ProjectByID(id string) (*Project, error) {
	return scanProject(s.db.QueryRow(projectSelect+" WHERE p.id = ?", id))
}

// ProjectOwner returns the id of the user that owns project id.
func (s *Store) ProjectOwner(id string) (string, error) {
	var owner string
	err := s.db.QueryRow("SELECT user_id FROM projects WHERE id = ?", id).Scan(&owner)
	return owner, mapErr(err)
}

func (s *Store) CreateProject(userID string, p Project) (*Project, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = s.stamp()
	_, err := s.db.Exec(
		`INSERT INTO projects (id, user_id, title, description, deadline, image, status, priority, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, userID, p.Title, p.Description, p.Deadline, p.Image,
		string(p.Status), string(p.Priority), string(p.Category), p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", mapErr(err))
	}
	return s.ProjectByID(p.ID)
}

// UpdateProject overwrites the editable fields. An empty image keeps the
// current one.
func (s *Store) UpdateProject(p Project) (*Project, error) {
	res, err := s.db.Exec(
		`UPDATE projects SET title = ?, description = ?, deadline = ?, status = ?, priority = ?, category = ?,
		image = CASE WHEN ? = '' THEN image ELSE ? END WHERE id = ?`,
		p.Title, p.Description, p.Deadline, string(p.Status), string(p.Priority), string(p.Category),
		p.Image, p.Image, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.ProjectByID(p.ID)
}

func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats

func (s *Store) Stats() (models.Stats, error) {
	var st models.Stats
	err := s.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM projects),
		(SELECT COUNT(*) FROM projects WHERE status = ?)`, string(models.StatusCompleted),
	).Scan(&st.Users, &st.Projects, &st.Completed)
	if err != nil {
		return models.Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return st, nil
}

// Activities builds the admin feed from the newest sign-ups and projects,
// newest first.
func (s *Store) Activities(limit int) ([]models.Activity, error) {
	var acts []models.Activity

	collect := func(query string, typ models.ActivityType, text func(string) string) error {
		rows, err := s.db.Query(query, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id, label, date string
			if err := rows.Scan(&id, &label, &date); err != nil {
				return err
			}
			acts = append(acts, models.Activity{ID: string(typ) + "-" + id, Type: typ, Text: text(label), Date: date})
		}
		return rows.Err()
	}

	err := collect("SELECT id, name, created_at FROM users ORDER BY created_at DESC LIMIT ?",
		models.ActivityUser, func(name string) string { return "انضم مستخدم جديد: " + name })
	if err != nil {
		return nil, fmt.Errorf("query user activity: %w", err)
	}
	err = collect("SELECT id, title, created_at FROM projects ORDER BY created_at DESC LIMIT ?",
		models.ActivityProject, func(title string) string { return "تمت إضافة مشروع جديد: " + title })
	if err != nil {
		return nil, fmt.Errorf("query project activity: %w", err)
	}

	sort.SliceStable(acts, func(i, j int) bool { return acts[i].Date > acts[j].Date })
	if len(acts) > limit {
		acts = acts[:limit]
	}
	if acts == nil {
		acts = []models.Activity{}
	}
	return acts, nil
}
