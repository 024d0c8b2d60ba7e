package models

import (
	"encoding/json"
	"testing"
)

func TestUserUnmarshalAliases(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantID     string
		wantAvatar string
	}{
		{"mongo id", `{"_id":"a1","name":"A","avatar":"uploads/x.png"}`, "a1", "uploads/x.png"},
		{"plain id", `{"id":"a2","name":"A"}`, "a2", ""},
		{"null avatar", `{"_id":"a3","avatar":null}`, "a3", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			if err := json.Unmarshal([]byte(tt.in), &u); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if u.ID != tt.wantID || u.Avatar != tt.wantAvatar {
				t.Errorf("got id=%q avatar=%q", u.ID, u.Avatar)
			}
		})
	}
}

func TestActivityUnmarshalAliases(t *testing.T) {
	var a Activity
	in := `{"id":"n1","type":"project","message":"مشروع جديد","createdAt":"2025-01-01T10:00:00Z"}`
	if err := json.Unmarshal([]byte(in), &a); err != nil {
		t.Fatal(err)
	}
	if a.ID != "n1" || a.Text != "مشروع جديد" || a.Date != "2025-01-01T10:00:00Z" || a.Type != ActivityProject {
		t.Errorf("unexpected activity: %+v", a)
	}
}

func TestActivityKeyWithoutID(t *testing.T) {
	a := Activity{Type: ActivityUser, Date: "d", Text: "t"}
	if a.Key() != "user|d|t" {
		t.Errorf("Key() = %q", a.Key())
	}
}

func TestStatsPending(t *testing.T) {
	tests := []struct {
		s    Stats
		want int
	}{
		{Stats{Projects: 10, Completed: 4}, 6},
		{Stats{Projects: 3, Completed: 3}, 0},
		{Stats{Projects: 1, Completed: 5}, 0},
	}
	for _, tt := range tests {
		if got := tt.s.Pending(); got != tt.want {
			t.Errorf("%+v.Pending() = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestProjectInputFieldsOmitsEmptyEnums(t *testing.T) {
	f := ProjectInput{Title: "t", Description: "d", Deadline: "2025-02-01"}.Fields()
	if len(f) != 3 {
		t.Fatalf("expected only text fields, got %v", f)
	}
	f = ProjectInput{Title: "t", Status: StatusCompleted, Category: CategoryDesign}.Fields()
	if len(f) != 5 {
		t.Fatalf("expected 5 fields, got %v", f)
	}
}

func TestUserFirstName(t *testing.T) {
	if got := (User{Name: "  حامد  الشهاوي"}).FirstName(); got != "حامد" {
		t.Errorf("FirstName = %q", got)
	}
	if got := (User{}).FirstName(); got != "" {
		t.Errorf("FirstName of empty = %q", got)
	}
}
