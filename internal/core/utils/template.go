package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumberTemplate renders an operation number template. The template
// uses two placeholders: {0:<date pattern>} for the date and {1:D<width>}
// for the zero padded sequence value, e.g. "CO{0:yyMMdd}-{1:D5}".
// Supported date pattern tokens are yyyy, yy, MM, dd, HH, mm and ss. Any other
// character is copied literally.
func FormatNumberTemplate(template string, date time.Time, seq int64) (string, error) {
	var b strings.Builder
	rest := template
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in number template %q", template)
		}
		end += start
		b.WriteString(rest[:start])

		arg, format, _ := strings.Cut(rest[start+1:end], ":")
		switch arg {
		case "0":
			if format == "" {
				format = "yyMMdd"
			}
			b.WriteString(formatDate(format, date))
		case "1":
			s, err := formatSequence(format, seq)
			if err != nil {
				return "", fmt.Errorf("number template %q: %w", template, err)
			}
			b.WriteString(s)
		default:
			return "", fmt.Errorf("unknown placeholder {%s} in number template %q", arg, template)
		}
		rest = rest[end+1:]
	}
	return b.String(), nil
}

func formatSequence(format string, seq int64) (string, error) {
	if format == "" {
		return strconv.FormatInt(seq, 10), nil
	}
	if format[0] != 'D' && format[0] != 'd' {
		return "", fmt.Errorf("unsupported sequence format %q", format)
	}
	width := 0
	if len(format) > 1 {
		w, err := strconv.Atoi(format[1:])
		if err != nil {
			return "", fmt.Errorf("bad sequence width %q: %w", format, err)
		}
		width = w
	}
	return fmt.Sprintf("%0*d", width, seq), nil
}

var dateTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// formatDate renders each token on its own, so literal characters such as
// digits or "Jan" are copied as is instead of being read as layout elements.
func formatDate(pattern string, date time.Time) string {
	var b strings.Builder
	for len(pattern) > 0 {
		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(pattern, t.token) {
				b.WriteString(date.Format(t.layout))
				pattern = pattern[len(t.token):]
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[0])
			pattern = pattern[1:]
		}
	}
	return b.String()
}
