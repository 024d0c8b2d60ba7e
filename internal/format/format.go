// Package format renders dates, counts and descriptions for display.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const AppName = "ProManager"

// Title is the document title for a page.
func Title(page string) string {
	return page + " | " + AppName
}

var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// Digits rewrites ASCII digits as Arabic-Indic digits.
func Digits(s string) string { return arabicDigits.Replace(s) }

var months = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// ParseDate accepts a bare YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateInput trims a stored deadline to the YYYY-MM-DD a date input takes.
func DateInput(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	return s
}

// LongDate formats a deadline as "٣١ يناير ٢٠٢٥". Unparseable input is
// returned unchanged.
func LongDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return Digits(t.Format("2")) + " " + months[t.Month()-1] + " " + Digits(t.Format("2006"))
}

// Clock formats the time of day as "hh:mm ص/م" in loc.
func Clock(s string, loc *time.Location) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	suffix := "ص"
	if t.Hour() >= 12 {
		suffix = "م"
	}
	return Digits(t.Format("03:04")) + " " + suffix
}

var relMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "الآن", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s دقيقة", DivBy: 1},
	{D: time.Hour, Format: "%s %d دقيقة", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s ساعة", DivBy: 1},
	{D: humanize.Day, Format: "%s %d ساعة", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s يوم", DivBy: 1},
	{D: humanize.Week, Format: "%s %d أيام", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "%s أسبوع", DivBy: 1},
	{D: humanize.Month, Format: "%s %d أسابيع", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "%s شهر", DivBy: 1},
	{D: humanize.Year, Format: "%s %d أشهر", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s سنة", DivBy: 1},
	{D: math.MaxInt64, Format: "%s %d سنوات", DivBy: humanize.Year},
}

// Ago describes when s happened relative to now, e.g. "منذ 5 دقيقة".
func Ago(s string, now time.Time) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return humanize.CustomRelTime(t, now, "منذ", "بعد", relMagnitudes)
}

// Count formats a statistic with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
