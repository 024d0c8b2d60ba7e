package validate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kidandcat/promanager/internal/models"
)

func field(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

func TestRegistration(t *testing.T) {
	ok := models.Registration{Name: "A", Email: "a@b.com", Password: "x", ConfirmPassword: "x"}
	if err := Registration(ok); err != nil {
		t.Errorf("valid registration: %v", err)
	}
	bad := ok
	bad.ConfirmPassword = "y"
	err := Registration(bad)
	if field(err) != "confirmPassword" {
		t.Errorf("mismatch: err = %v", err)
	}
	var ve *Error
	if errors.As(err, &ve) && ve.Message != MsgPasswordMismatch {
		t.Errorf("message = %q", ve.Message)
	}
	if field(Registration(models.Registration{Password: "x", ConfirmPassword: "x"})) != "form" {
		t.Error("empty name accepted")
	}
}

// A mismatched password never reaches the network.
func TestRegistrationMismatchSendsNothing(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { requests++ }))
	defer srv.Close()

	submit := func(r models.Registration) error {
		if err := Registration(r); err != nil {
			return err
		}
		resp, err := http.Post(srv.URL, "application/json", nil)
		if err == nil {
			resp.Body.Close()
		}
		return err
	}
	if err := submit(models.Registration{Name: "A", Email: "a@b.com", Password: "x", ConfirmPassword: "z"}); err == nil {
		t.Fatal("mismatch submitted")
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		in   models.ProjectInput
		want string
	}{
		{"valid", models.ProjectInput{Title: "T", Deadline: "2025-01-31"}, ""},
		{"valid timestamp", models.ProjectInput{Title: "T", Deadline: "2025-01-31T00:00:00Z"}, ""},
		{"no title", models.ProjectInput{Deadline: "2025-01-31"}, "title"},
		{"no deadline", models.ProjectInput{Title: "T"}, "deadline"},
		{"bad deadline", models.ProjectInput{Title: "T", Deadline: "tomorrow"}, "deadline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := field(Project(tt.in)); got != tt.want {
				t.Errorf("Project() field = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginAndProfile(t *testing.T) {
	if Login(models.Credentials{Email: "a@b.com", Password: "x"}) != nil {
		t.Error("valid login rejected")
	}
	if Login(models.Credentials{Email: " "}) == nil {
		t.Error("empty login accepted")
	}
	if field(Profile(models.ProfileInput{Email: "a@b.com"})) != "name" {
		t.Error("empty name accepted")
	}
	if Profile(models.ProfileInput{Name: "A", Email: "a@b.com"}) != nil {
		t.Error("valid profile rejected")
	}
}
