package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	store := session.NewStore(session.NewMemoryKV())
	return New(srv.URL+"/api", store, opts...), store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestLoginWritesSession(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var creds models.Credentials
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "a@b.com" || creds.Password != "x" {
			t.Errorf("credentials = %+v", creds)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   "t1",
			"user":    map[string]any{"_id": "u1", "name": "A", "email": "a@b.com", "role": "member"},
		})
	})

	var seen []string
	cancel := store.Subscribe(func(s session.Session, ok bool) {
		if ok {
			seen = append(seen, s.Token+":"+s.User.Name)
		}
	})
	defer cancel()

	sess, err := c.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Token != "t1" || sess.User.ID != "u1" || sess.User.IsAdmin() {
		t.Errorf("session = %+v", sess)
	}
	got, ok := store.Read()
	if !ok || got.Token != "t1" || got.User.Email != "a@b.com" {
		t.Errorf("store = %+v, %v", got, ok)
	}
	if len(seen) != 1 || seen[0] != "t1:A" {
		t.Errorf("subscriber saw %v before Login returned", seen)
	}
}

func TestLoginNormalizesUserShapes(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"data wraps user and token", map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "t2",
				"user":  map[string]any{"id": "u2", "name": "B", "role": "admin"},
			},
		}},
		{"data is the user", map[string]any{
			"success": true,
			"token":   "t2",
			"data":    map[string]any{"_id": "u2", "name": "B", "role": "admin"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})
			sess, err := c.Login(context.Background(), models.Credentials{Email: "b@b.com", Password: "y"})
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if sess.Token != "t2" || sess.User.ID != "u2" || !sess.User.IsAdmin() {
				t.Errorf("session = %+v", sess)
			}
			if store.Token() != "t2" {
				t.Errorf("stored token = %q", store.Token())
			}
		})
	}
}

func TestLoginWithoutToken(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": map[string]any{"_id": "u1"}})
	})
	if _, err := c.Login(context.Background(), models.Credentials{}); !errors.Is(err, ErrNoToken) {
		t.Errorf("err = %v, want ErrNoToken", err)
	}
	if _, ok := store.Read(); ok {
		t.Error("session written without a token")
	}
}

func TestBearerHeader(t *testing.T) {
	var auth atomic.Value
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
	})

	if _, err := c.Projects(context.Background()); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if got := auth.Load().(string); got != "" {
		t.Errorf("anonymous Authorization = %q", got)
	}

	store.Write(session.Session{Token: "t1", User: models.User{ID: "u1", Name: "A"}})
	if _, err := c.Projects(context.Background()); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if got := auth.Load().(string); got != "Bearer t1" {
		t.Errorf("Authorization = %q, want Bearer t1", got)
	}
}

func TestUnauthorizedClearsOnce(t *testing.T) {
	var hook int
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "انتهت الجلسة"})
	}, WithUnauthorized(func() { hook++ }))

	store.Write(session.Session{Token: "t1", User: models.User{ID: "u1", Name: "A"}})
	var broadcasts int
	cancel := store.Subscribe(func(session.Session, bool) { broadcasts++ })
	defer cancel()

	_, err := c.MyProjects(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("err = %v, want 401", err)
	}
	if _, ok := store.Read(); ok {
		t.Error("session survived a 401")
	}
	if hook != 1 || broadcasts != 1 {
		t.Errorf("hook = %d, broadcasts = %d, want 1 and 1", hook, broadcasts)
	}
	if Message(err, "fallback") != "انتهت الجلسة" {
		t.Errorf("Message = %q", Message(err, "fallback"))
	}
}

func TestOtherFailuresKeepSession(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
	})
	store.Write(session.Session{Token: "t1", User: models.User{ID: "u1", Name: "A"}})

	_, err := c.Projects(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("err = %v, want *Error 500", err)
	}
	if Message(err, "fallback") != "fallback" {
		t.Errorf("Message = %q, want fallback", Message(err, "fallback"))
	}
	if store.Token() != "t1" {
		t.Error("500 cleared the session")
	}

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	offline := New(srv.URL, store)
	if _, err := offline.Projects(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
	if store.Token() != "t1" {
		t.Error("transport error cleared the session")
	}
}

func TestExplicitFailureEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "البريد مستخدم"})
	})
	err := c.Register(context.Background(), models.Registration{Name: "A", Email: "a@b.com", Password: "x"})
	if Message(err, "") != "البريد مستخدم" {
		t.Errorf("err = %v", err)
	}
}

func TestDeleteProjectIssuesOneDelete(t *testing.T) {
	var deletes int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
			if r.URL.Path != "/api/projects/p2" {
				t.Errorf("DELETE %s", r.URL.Path)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "تم الحذف"})
	})
	if err := c.DeleteProject(context.Background(), "p2"); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if n := atomic.LoadInt32(&deletes); n != 1 {
		t.Errorf("DELETE count = %d, want 1", n)
	}
}

func TestCreateProjectMultipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			return
		}
		if r.FormValue("title") != "Site" || r.FormValue("deadline") != "2025-01-31" {
			t.Errorf("form = %v", r.MultipartForm.Value)
		}
		if _, ok := r.MultipartForm.Value["status"]; ok {
			t.Error("empty status should be left out")
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image part: %v", err)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if hdr.Filename != "cover.png" || string(data) != "png-bytes" {
			t.Errorf("image = %s %q", hdr.Filename, data)
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "p1", "title": "Site", "image": nil},
		})
	})
	p, err := c.CreateProject(context.Background(),
		models.ProjectInput{Title: "Site", Description: "d", Deadline: "2025-01-31"},
		&models.Upload{Name: "cover.png", ContentType: "image/png", Data: []byte("png-bytes")})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.ID != "p1" || p.Image != "" {
		t.Errorf("project = %+v", p)
	}
}

func TestUpdateProfileKeepsToken(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/auth/profile" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		r.ParseMultipartForm(1 << 20)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "u1", "name": r.FormValue("name"), "email": r.FormValue("email"), "avatar": "uploads/a.png"},
		})
	})
	store.Write(session.Session{Token: "t1", User: models.User{ID: "u1", Name: "A"}})

	u, err := c.UpdateProfile(context.Background(), models.ProfileInput{Name: "A2", Email: "a2@b.com"}, nil)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got, ok := store.Read()
	if !ok || got.Token != "t1" || got.User.Name != "A2" || got.User.Avatar != "uploads/a.png" || u.Email != "a2@b.com" {
		t.Errorf("store = %+v", got)
	}
}

func TestAdminEndpoints(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/stats":
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": map[string]int{"users": 3, "projects": 5, "completed": 2}})
		case "/api/auth/users/u2/toggle":
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": false, "message": "تم تعطيل الحساب"})
		case "/api/auth/activities":
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": nil})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	st, err := c.Stats(ctx)
	if err != nil || st.Users != 3 || st.Pending() != 3 {
		t.Errorf("Stats = %+v, %v", st, err)
	}
	active, msg, err := c.ToggleUser(ctx, "u2")
	if err != nil || active || msg != "تم تعطيل الحساب" {
		t.Errorf("ToggleUser = %v, %q, %v", active, msg, err)
	}
	acts, err := c.Activities(ctx)
	if err != nil || acts == nil || len(acts) != 0 {
		t.Errorf("Activities = %#v, %v", acts, err)
	}
}

func TestLogoutClears(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	store.Write(session.Session{Token: "t1", User: models.User{ID: "u1", Name: "A"}})
	c.Logout()
	if _, ok := store.Read(); ok {
		t.Error("session survived Logout")
	}
}
