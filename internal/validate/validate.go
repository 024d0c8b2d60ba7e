// Package validate checks forms before anything is sent to the API.
package validate

import (
	"strings"

	"github.com/kidandcat/promanager/internal/format"
	"github.com/kidandcat/promanager/internal/models"
)

// Error is a form problem the user can fix. Message is shown as is.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Field + ": " + e.Message }

const (
	MsgPasswordMismatch = "كلمات المرور غير متطابقة ⚠️"
	MsgDeadlineRequired = "يا فنان لازم تحدد موعد انتهاء للمشروع!"
	MsgDeadlineInvalid  = "تاريخ التسليم غير صالح"
	MsgTitleRequired    = "عنوان المشروع مطلوب"
	MsgRequired         = "جميع الحقول مطلوبة"
	MsgNameRequired     = "الاسم مطلوب"
)

func Registration(r models.Registration) error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return &Error{Field: "form", Message: MsgRequired}
	}
	if r.Password != r.ConfirmPassword {
		return &Error{Field: "confirmPassword", Message: MsgPasswordMismatch}
	}
	return nil
}

func Login(c models.Credentials) error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return &Error{Field: "form", Message: MsgRequired}
	}
	return nil
}

// Project checks the fields every project form needs. The deadline must be
// a date.
func Project(in models.ProjectInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &Error{Field: "title", Message: MsgTitleRequired}
	}
	if strings.TrimSpace(in.Deadline) == "" {
		return &Error{Field: "deadline", Message: MsgDeadlineRequired}
	}
	if _, ok := format.ParseDate(in.Deadline); !ok {
		return &Error{Field: "deadline", Message: MsgDeadlineInvalid}
	}
	return nil
}

func Profile(in models.ProfileInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &Error{Field: "name", Message: MsgNameRequired}
	}
	if strings.TrimSpace(in.Email) == "" {
		return &Error{Field: "email", Message: MsgRequired}
	}
	return nil
}
