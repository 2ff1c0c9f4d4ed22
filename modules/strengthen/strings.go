package strengthen

import (
	"strings"
)

// SimpleAtob parses common boolean spellings, falling back to dv.
func SimpleAtob(s string, dv bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return dv
}

// SplitFields splits s on whitespace and commas, skipping empty fields.
func SplitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f', ',':
			return true
		}
		return false
	})
}
