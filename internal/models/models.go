// Package models holds the JSON shapes exchanged with the ProManager API.
package models

import (
	"encoding/json"
	"strings"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Status string

const (
	StatusPending    Status = "قيد الانتظار"
	StatusInProgress Status = "جاري العمل"
	StatusCompleted  Status = "مكتمل"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

type Priority string

const (
	PriorityHigh   Priority = "عالية"
	PriorityMedium Priority = "متوسطة"
	PriorityLow    Priority = "منخفضة"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

type Category string

const (
	CategoryAll         Category = "الكل"
	CategoryProgramming Category = "برمجة"
	CategoryDesign      Category = "تصميم"
	CategoryMarketing   Category = "تسويق"
	CategoryManagement  Category = "إدارة"
	CategoryOther       Category = "أخرى"
)

// Categories lists the categories a project can carry. CategoryAll is a
// filter value only.
var Categories = []Category{
	CategoryProgramming,
	CategoryDesign,
	CategoryMarketing,
	CategoryManagement,
	CategoryOther,
}

type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// FirstName is the first word of the display name.
func (u User) FirstName() string {
	if f := strings.Fields(u.Name); len(f) > 0 {
		return f[0]
	}
	return ""
}

// UnmarshalJSON accepts both "_id" and "id" and a null avatar.
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var aux struct {
		plain
		AltID  string  `json:"id"`
		Avatar *string `json:"avatar"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = User(aux.plain)
	if u.ID == "" {
		u.ID = aux.AltID
	}
	u.Avatar = ""
	if aux.Avatar != nil {
		u.Avatar = *aux.Avatar
	}
	return nil
}

type Project struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	Image       string   `json:"image,omitempty"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`
	Owner       *User    `json:"user,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

func (p Project) Completed() bool { return p.Status == StatusCompleted }

func (p *Project) UnmarshalJSON(b []byte) error {
	type plain Project
	var aux struct {
		plain
		AltID string  `json:"id"`
		Image *string `json:"image"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = Project(aux.plain)
	if p.ID == "" {
		p.ID = aux.AltID
	}
	p.Image = ""
	if aux.Image != nil {
		p.Image = *aux.Image
	}
	return nil
}

type ActivityType string

const (
	ActivityUser    ActivityType = "user"
	ActivityProject ActivityType = "project"
)

type Activity struct {
	ID   string       `json:"_id"`
	Type ActivityType `json:"type"`
	Text string       `json:"text"`
	Date string       `json:"date"`
}

// UnmarshalJSON accepts the message/createdAt spelling used by older feeds.
func (a *Activity) UnmarshalJSON(b []byte) error {
	type plain Activity
	var aux struct {
		plain
		AltID     string `json:"id"`
		Message   string `json:"message"`
		CreatedAt string `json:"createdAt"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*a = Activity(aux.plain)
	if a.ID == "" {
		a.ID = aux.AltID
	}
	if a.Text == "" {
		a.Text = aux.Message
	}
	if a.Date == "" {
		a.Date = aux.CreatedAt
	}
	return nil
}

// Key identifies an activity for the dismissed denylist. Feeds without ids
// fall back to type, date and text.
func (a Activity) Key() string {
	if a.ID != "" {
		return a.ID
	}
	return string(a.Type) + "|" + a.Date + "|" + a.Text
}

type Stats struct {
	Users     int `json:"users"`
	Projects  int `json:"projects"`
	Completed int `json:"completed"`
}

// Pending is projects minus completed, never negative.
func (s Stats) Pending() int {
	if p := s.Projects - s.Completed; p > 0 {
		return p
	}
	return 0
}

// Envelope is the response wrapper every endpoint returns.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Stats   *Stats          `json:"stats,omitempty"`
	Status  *bool           `json:"status,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// ProjectInput carries the text fields of a project create/update form.
type ProjectInput struct {
	Title       string
	Description string
	Deadline    string
	Status      Status
	Priority    Priority
	Category    Category
}

// Fields returns the multipart form fields. Empty optional values are left
// out so the server applies its defaults.
func (in ProjectInput) Fields() [][2]string {
	f := [][2]string{
		{"title", in.Title},
		{"description", in.Description},
		{"deadline", in.Deadline},
	}
	if in.Status != "" {
		f = append(f, [2]string{"status", string(in.Status)})
	}
	if in.Priority != "" {
		f = append(f, [2]string{"priority", string(in.Priority)})
	}
	if in.Category != "" {
		f = append(f, [2]string{"category", string(in.Category)})
	}
	return f
}

type ProfileInput struct {
	Name  string
	Email string
}

// Upload is a file picked in the browser.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}
