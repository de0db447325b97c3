package versions

import (
	"strings"

	"github.com/promptforge/promptforge/pkg/models"
)

// Diff computes a positional line diff between two contents. Lines are
// compared strictly by index, not by similarity: line i of a is matched
// against line i of b, and a changed line yields one removed entry
// followed by one added entry sharing the same line number. Downstream
// consumers depend on these positional semantics, so this must not be
// replaced with an LCS-based diff.
func Diff(a, b string) []models.DiffEntry {
	linesA := strings.Split(a, "\n")
	linesB := strings.Split(b, "\n")

	max := len(linesA)
	if len(linesB) > max {
		max = len(linesB)
	}

	var entries []models.DiffEntry
	for i := 0; i < max; i++ {
		lineNum := i + 1
		inA := i < len(linesA)
		inB := i < len(linesB)

		switch {
		case inA && inB && linesA[i] == linesB[i]:
			entries = append(entries, models.DiffEntry{Type: models.DiffUnchanged, Content: linesA[i], LineNumber: lineNum})
		case inA && inB:
			entries = append(entries, models.DiffEntry{Type: models.DiffRemoved, Content: linesA[i], LineNumber: lineNum})
			entries = append(entries, models.DiffEntry{Type: models.DiffAdded, Content: linesB[i], LineNumber: lineNum})
		case inA:
			entries = append(entries, models.DiffEntry{Type: models.DiffRemoved, Content: linesA[i], LineNumber: lineNum})
		default:
			entries = append(entries, models.DiffEntry{Type: models.DiffAdded, Content: linesB[i], LineNumber: lineNum})
		}
	}

	return entries
}
