package db

import (
	"errors"
	"testing"
	"time"

	"github.com/kidandcat/promanager/internal/models"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	// strictly increasing timestamps keep ORDER BY created_at deterministic
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestUsers(t *testing.T) {
	s := openTest(t)

	u, err := s.CreateUser("A", " A@B.com ", "hash", models.RoleMember)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.Email != "a@b.com" || !u.IsActive {
		t.Errorf("user = %+v", u)
	}
	if _, err := s.CreateUser("A2", "a@b.com", "hash", models.RoleMember); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate email: err = %v, want ErrDuplicate", err)
	}

	got, err := s.UserByEmail("a@b.com")
	if err != nil || got.ID != u.ID || got.PasswordHash != "hash" {
		t.Errorf("UserByEmail = %+v, %v", got, err)
	}
	if _, err := s.UserByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UserByID(missing): err = %v, want ErrNotFound", err)
	}

	active, err := s.ToggleUser(u.ID)
	if err != nil || active {
		t.Errorf("ToggleUser = %v, %v, want false", active, err)
	}
	active, _ = s.ToggleUser(u.ID)
	if !active {
		t.Error("second toggle should reactivate")
	}

	up, err := s.UpdateProfile(u.ID, "A2", "a2@b.com", "av.png")
	if err != nil || up.Name != "A2" || up.Avatar != "av.png" {
		t.Errorf("UpdateProfile = %+v, %v", up, err)
	}
	up, _ = s.UpdateProfile(u.ID, "A3", "a2@b.com", "")
	if up.Avatar != "av.png" {
		t.Errorf("empty avatar replaced the old one: %q", up.Avatar)
	}

	ok, err := s.PromoteAdmin("a2@b.com")
	if err != nil || !ok {
		t.Fatalf("PromoteAdmin = %v, %v", ok, err)
	}
	if got, _ := s.UserByID(u.ID); !got.IsAdmin() {
		t.Error("user not promoted")
	}
	if ok, _ := s.PromoteAdmin("nobody@b.com"); ok {
		t.Error("PromoteAdmin reported an unknown email")
	}
}

func TestProjects(t *testing.T) {
	s := openTest(t)
	a, _ := s.CreateUser("A", "a@b.com", "h", models.RoleMember)
	b, _ := s.CreateUser("B", "b@b.com", "h", models.RoleMember)

	p1, err := s.CreateProject(a.ID, Project{Title: "One", Deadline: "2025-02-01",
		Status: models.StatusPending, Priority: models.PriorityHigh, Category: models.CategoryDesign})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p1.Owner == nil || p1.Owner.Name != "A" {
		t.Errorf("owner = %+v", p1.Owner)
	}
	s.CreateProject(b.ID, Project{Title: "Two", Status: models.StatusCompleted,
		Priority: models.PriorityLow, Category: models.CategoryOther, Image: "two.png"})

	all, _ := s.ListProjects()
	if len(all) != 2 || all[0].Title != "Two" {
		t.Errorf("ListProjects = %+v", all)
	}
	mine, _ := s.ProjectsByOwner(a.ID)
	if len(mine) != 1 || mine[0].ID != p1.ID {
		t.Errorf("ProjectsByOwner = %+v", mine)
	}

	p1.Title = "One v2"
	p1.Status = models.StatusCompleted
	upd, err := s.UpdateProject(*p1)
	if err != nil || upd.Title != "One v2" {
		t.Errorf("UpdateProject = %+v, %v", upd, err)
	}

	st, _ := s.Stats()
	if st.Users != 2 || st.Projects != 2 || st.Completed != 2 {
		t.Errorf("Stats = %+v", st)
	}

	if err := s.DeleteProject(p1.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if err := s.DeleteProject(p1.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}

	// deleting a user cascades to their projects
	s.DeleteUser(b.ID)
	if all, _ := s.ListProjects(); len(all) != 0 {
		t.Errorf("projects after owner delete = %+v", all)
	}
}

func TestActivities(t *testing.T) {
	s := openTest(t)
	if acts, err := s.Activities(10); err != nil || acts == nil || len(acts) != 0 {
		t.Fatalf("empty feed = %#v, %v", acts, err)
	}

	a, _ := s.CreateUser("A", "a@b.com", "h", models.RoleMember)
	s.CreateProject(a.ID, Project{Title: "One", Status: models.StatusPending,
		Priority: models.PriorityHigh, Category: models.CategoryDesign})
	s.CreateUser("B", "b@b.com", "h", models.RoleMember)

	acts, err := s.Activities(10)
	if err != nil {
		t.Fatalf("Activities: %v", err)
	}
	if len(acts) != 3 {
		t.Fatalf("len = %d, want 3", len(acts))
	}
	want := []models.ActivityType{models.ActivityUser, models.ActivityProject, models.ActivityUser}
	for i, w := range want {
		if acts[i].Type != w {
			t.Errorf("acts[%d].Type = %s, want %s", i, acts[i].Type, w)
		}
	}
	if acts[0].Text != "انضم مستخدم جديد: B" {
		t.Errorf("acts[0].Text = %q", acts[0].Text)
	}
	if short, _ := s.Activities(2); len(short) != 2 {
		t.Errorf("limit ignored: %d", len(short))
	}
}
