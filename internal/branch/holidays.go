package branch

import (
	"strings"

	"github.com/sells-group/agreement-cli/internal/model"
)

// insertHolidays returns a copy of base with each insert placed at its
// 1-based position. Positions past the end append.
func insertHolidays(base []string, inserts []model.HolidayInsert) []string {
	out := make([]string, len(base), len(base)+len(inserts))
	copy(out, base)
	for _, h := range inserts {
		i := h.Position - 1
		if i < 0 {
			i = 0
		}
		if i >= len(out) {
			out = append(out, h.Name)
			continue
		}
		out = append(out[:i+1], out[i:]...)
		out[i] = h.Name
	}
	return out
}

// FormatHolidays renders a list as prose with an Oxford comma and exactly one
// trailing period.
func FormatHolidays(holidays []string) string {
	n := len(holidays)
	if n == 0 {
		return ""
	}
	last := strings.TrimRight(strings.TrimSpace(holidays[n-1]), ".") + "."
	if n == 1 {
		return last
	}
	return strings.Join(holidays[:n-1], ", ") + ", and " + last
}
