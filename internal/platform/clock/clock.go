package clock

import (
	"math"
	"strings"
	"time"
)

// Now es la capacidad de reloj inyectable. Los engines nunca llaman a time.Now directo.
type Now func() time.Time

// Fixed devuelve un reloj congelado (tests / CLI).
func Fixed(t time.Time) Now {
	return func() time.Time { return t }
}

// Layouts aceptados, en orden. Los formularios mandan "YYYY-MM-DDTHH:MM" sin zona.
var layouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse interpreta un timestamp tipo ISO-8601 local en loc.
// Valores con zona (RFC 3339) respetan su propio offset.
func Parse(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseOrNow: timestamp ilegible => "ahora" (elapsed = 0).
func ParseOrNow(s string, now time.Time) time.Time {
	if t, ok := Parse(s, now.Location()); ok {
		return t
	}
	return now
}

// HoursSince = max(0, now - s) en horas.
func HoursSince(s string, now time.Time) float64 {
	t := ParseOrNow(s, now)
	return math.Max(0, now.Sub(t).Hours())
}

// HoursBetween = |b - a| en horas.
func HoursBetween(a, b string, now time.Time) float64 {
	ta := ParseOrNow(a, now)
	tb := ParseOrNow(b, now)
	return math.Abs(tb.Sub(ta).Hours())
}

// Format devuelve el formato local que usan los formularios.
func Format(t time.Time) string {
	return t.Format("2006-01-02T15:04")
}
