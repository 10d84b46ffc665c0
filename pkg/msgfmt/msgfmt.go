package msgfmt

import "regexp"

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Format substitutes {name}-style placeholders in the template with values
// from fields. A placeholder whose field is absent or empty becomes the
// empty string. Text that does not match the placeholder shape is passed
// through unchanged. Never fails.
func Format(template string, fields map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		return fields[name]
	})
}
