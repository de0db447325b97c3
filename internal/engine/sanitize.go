package engine

import "strings"

// knownPreambles are lead-ins models commonly emit despite being told
// to return only the optimized prompt. Matched case-insensitively as
// prefixes of the trimmed response.
var knownPreambles = []string{
	"here is the optimized prompt:",
	"here's the optimized prompt:",
	"here is your optimized prompt:",
	"here's your optimized prompt:",
	"here is the improved prompt:",
	"here's the improved prompt:",
	"here is the rewritten prompt:",
	"optimized prompt:",
	"improved prompt:",
	"sure, here is the optimized prompt:",
	"certainly! here is the optimized prompt:",
}

// Clean strips preambles, a wrapping code fence, and one layer of
// wrapping quotes from a raw completion. It never fails: anything
// unexpected leaves the trimmed input unchanged.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return text
	}

	lower := strings.ToLower(text)
	for _, p := range knownPreambles {
		if strings.HasPrefix(lower, p) {
			text = strings.TrimSpace(text[len(p):])
			break
		}
	}

	text = stripFence(text)

	// One layer of wrapping quotes only, and only when the whole text
	// is quoted.
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	return text
}

// stripFence removes a code fence wrapping the entire text, including
// any language tag on the opening fence.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}

	inner := strings.TrimSuffix(text, "```")
	inner = strings.TrimPrefix(inner, "```")

	// Drop a language tag like "text" or "markdown" on the first line.
	if idx := strings.IndexByte(inner, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(inner[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, " \t") && len(firstLine) <= 20 {
			inner = inner[idx+1:]
		}
	}

	return strings.TrimSpace(inner)
}
