package format

import (
	"strings"
	"testing"
	"time"
)

func TestTitle(t *testing.T) {
	if got := Title("الرئيسية"); got != "الرئيسية | ProManager" {
		t.Errorf("Title = %q", got)
	}
}

func TestDateInput(t *testing.T) {
	tests := map[string]string{
		"2025-01-31T00:00:00.000Z": "2025-01-31",
		"2025-01-31":               "2025-01-31",
		"":                         "",
	}
	for in, want := range tests {
		if got := DateInput(in); got != want {
			t.Errorf("DateInput(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLongDate(t *testing.T) {
	tests := map[string]string{
		"2025-01-31":               "٣١ يناير ٢٠٢٥",
		"2024-12-05T10:00:00Z":     "٥ ديسمبر ٢٠٢٤",
		"2024-07-09T10:00:00.000Z": "٩ يوليو ٢٠٢٤",
		"soon":                     "soon",
	}
	for in, want := range tests {
		if got := LongDate(in); got != want {
			t.Errorf("LongDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClock(t *testing.T) {
	if got := Clock("2025-01-31T14:05:00Z", time.UTC); got != "٠٢:٠٥ م" {
		t.Errorf("Clock pm = %q", got)
	}
	if got := Clock("2025-01-31T09:30:00Z", time.UTC); got != "٠٩:٣٠ ص" {
		t.Errorf("Clock am = %q", got)
	}
	if got := Clock("", nil); got != "" {
		t.Errorf("Clock empty = %q", got)
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "الآن"},
		{now.Add(-90 * time.Second), "منذ دقيقة"},
		{now.Add(-5 * time.Minute), "منذ 5 دقيقة"},
		{now.Add(-3 * time.Hour), "منذ 3 ساعة"},
		{now.Add(-36 * time.Hour), "منذ يوم"},
		{now.Add(-4 * 24 * time.Hour), "منذ 4 أيام"},
		{now.Add(2 * time.Hour), "بعد 2 ساعة"},
	}
	for _, tt := range tests {
		if got := Ago(tt.at.Format(time.RFC3339), now); got != tt.want {
			t.Errorf("Ago(%v) = %q, want %q", now.Sub(tt.at), got, tt.want)
		}
	}
	if Ago("bad", now) != "" {
		t.Error("Ago of garbage should be empty")
	}
}

func TestCount(t *testing.T) {
	if got := Count(1234567); got != "1,234,567" {
		t.Errorf("Count = %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown("**مهم**\n\n<script>alert(1)</script>")
	if !strings.Contains(got, "<strong>مهم</strong>") {
		t.Errorf("Markdown bold missing: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("Markdown kept raw html: %q", got)
	}
}
