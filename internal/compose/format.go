package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/sells-group/agreement-cli/internal/model"
)

// Currency formats an amount with exactly two decimals.
func Currency(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDate renders YYYY-MM-DD as MM/DD/YYYY. Any other string is returned
// unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return s
	}
	return t.Format("01/02/2006")
}

// Lines splits free text on newlines, dropping a trailing carriage return
// from each line.
func Lines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// BankLine joins the bank name, city and state, skipping blanks after the
// name.
func BankLine(a model.Agreement) string {
	out := a.BankName.String()
	for _, part := range []model.Text{a.BankCity, a.BankState} {
		if part.Provided() {
			out += ", " + part.String()
		}
	}
	return out
}

// accountType normalizes the account type to "checking", "saving" or "".
func accountType(t model.Text) string {
	v := strings.ToLower(t.String())
	switch {
	case strings.HasPrefix(v, "check"):
		return "checking"
	case strings.HasPrefix(v, "sav"):
		return "saving"
	}
	return ""
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
