package trips

import "strings"

// ExtractJSONObject recovers a JSON object from model output that may be
// wrapped in code fences or surrounding prose. It strips markdown fences,
// then scans for the outermost balanced brace region while respecting
// string literals and escapes. Returns "" when no object-like region
// exists; the caller is expected to fall back to a strict parse.
func ExtractJSONObject(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	// Unbalanced braces, nothing recoverable.
	return ""
}
