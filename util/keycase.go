package util

import (
	"strings"
	"unicode"
)

// Key formats understood by FormatKeys.
const (
	FormatUnderscore = "underscore"
	FormatDasherize  = "dasherize"
	FormatCamelize   = "camelize"
)

// FormatKeys returns a copy of m with every key translated to the requested
// format. Nested objects and arrays are walked recursively. The input map is
// never modified.
func FormatKeys(m map[string]any, format string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[FormatKey(k, format)] = formatValue(v, format)
	}
	return out
}

func formatValue(v any, format string) any {
	switch val := v.(type) {
	case map[string]any:
		return FormatKeys(val, format)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = formatValue(item, format)
		}
		return items
	default:
		return v
	}
}

// FormatKey translates a single key. Unknown formats leave the key as is.
func FormatKey(key, format string) string {
	switch format {
	case FormatUnderscore:
		return Underscore(key)
	case FormatDasherize:
		return strings.ReplaceAll(Underscore(key), "_", "-")
	case FormatCamelize:
		return Camelize(key)
	default:
		return key
	}
}

// Underscore converts camelCase and dash-case to underscore_case.
// Acronym runs are kept together: "HTTPServer" becomes "http_server".
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		switch {
		case r == '-' || r == ' ':
			b.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && runes[i-1] != '_' && runes[i-1] != '-' &&
				(unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
					(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Camelize converts underscore_case and dash-case to camelCase.
func Camelize(s string) string {
	var b strings.Builder
	upperNext := false

	for i, r := range s {
		switch {
		case r == '_' || r == '-':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
