package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": truncate,
		"json":     toJSON,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
		"join":     strings.Join,
		"default":  defaultValue,
		"indent":   indent,
	}
}

// truncate cuts a string to the specified maximum length.
// If the string is longer than maxLen, it is truncated and "..." is
// appended. For maxLen <= 3, no ellipsis is added.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// toJSON converts a value to a pretty-printed JSON string.
// If marshaling fails, returns the value's default string representation.
func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// defaultValue returns the default if the value is nil or an empty string.
// For other types (including zero values like 0), the original value is
// returned.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}

// indent adds the given number of spaces to each line of the input.
func indent(s string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
