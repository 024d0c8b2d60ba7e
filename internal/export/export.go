// Package export writes the admin users table as a spreadsheet file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kidandcat/promanager/internal/models"
)

const (
	Filename = "قائمة_المستخدمين.csv"
	MIME     = "text/csv;charset=utf-8"
)

var header = []string{"المعرف", "الاسم", "البريد", "الصلاحية", "الحالة", "تاريخ الانضمام"}

func RoleLabel(r models.Role) string {
	if r == models.RoleAdmin {
		return "مدير"
	}
	return "عضو"
}

func StatusLabel(active bool) string {
	if active {
		return "نشط"
	}
	return "معطل"
}

// Users writes users as CSV. The UTF-8 byte order mark makes spreadsheet
// apps read the Arabic text correctly.
func Users(w io.Writer, users []models.User) error {
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, u := range users {
		row := []string{u.ID, u.Name, u.Email, RoleLabel(u.Role), StatusLabel(u.IsActive), u.CreatedAt}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write user %s: %w", u.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
