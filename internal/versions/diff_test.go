package versions

import (
	"testing"

	"github.com/promptforge/promptforge/pkg/models"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want []models.DiffEntry
	}{
		{
			name: "identical",
			a:    "one\ntwo",
			b:    "one\ntwo",
			want: []models.DiffEntry{
				{Type: models.DiffUnchanged, Content: "one", LineNumber: 1},
				{Type: models.DiffUnchanged, Content: "two", LineNumber: 2},
			},
		},
		{
			name: "changed line yields removed then added on the same number",
			a:    "one\ntwo",
			b:    "one\n2",
			want: []models.DiffEntry{
				{Type: models.DiffUnchanged, Content: "one", LineNumber: 1},
				{Type: models.DiffRemoved, Content: "two", LineNumber: 2},
				{Type: models.DiffAdded, Content: "2", LineNumber: 2},
			},
		},
		{
			name: "lines added at the end",
			a:    "one",
			b:    "one\ntwo\nthree",
			want: []models.DiffEntry{
				{Type: models.DiffUnchanged, Content: "one", LineNumber: 1},
				{Type: models.DiffAdded, Content: "two", LineNumber: 2},
				{Type: models.DiffAdded, Content: "three", LineNumber: 3},
			},
		},
		{
			name: "lines removed at the end",
			a:    "one\ntwo\nthree",
			b:    "one",
			want: []models.DiffEntry{
				{Type: models.DiffUnchanged, Content: "one", LineNumber: 1},
				{Type: models.DiffRemoved, Content: "two", LineNumber: 2},
				{Type: models.DiffRemoved, Content: "three", LineNumber: 3},
			},
		},
		{
			// Positional comparison: an inserted first line shifts
			// everything and the diff reports each position changed.
			// That is intended; this is not an LCS diff.
			name: "insertion at the top cascades",
			a:    "one\ntwo",
			b:    "zero\none\ntwo",
			want: []models.DiffEntry{
				{Type: models.DiffRemoved, Content: "one", LineNumber: 1},
				{Type: models.DiffAdded, Content: "zero", LineNumber: 1},
				{Type: models.DiffRemoved, Content: "two", LineNumber: 2},
				{Type: models.DiffAdded, Content: "one", LineNumber: 2},
				{Type: models.DiffAdded, Content: "two", LineNumber: 3},
			},
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: []models.DiffEntry{
				{Type: models.DiffUnchanged, Content: "", LineNumber: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, e := range got {
				if e != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, e, tt.want[i])
				}
			}
		})
	}
}

// Swapping the inputs swaps added and removed labels but keeps the same
// line numbers per label pair.
func TestDiffAntiSymmetric(t *testing.T) {
	a := "one\ntwo\nthree"
	b := "one\n2\nthree\nfour"

	forward := Diff(a, b)
	backward := Diff(b, a)

	count := func(entries []models.DiffEntry, typ models.DiffType) map[int]int {
		lines := make(map[int]int)
		for _, e := range entries {
			if e.Type == typ {
				lines[e.LineNumber]++
			}
		}
		return lines
	}

	fwdAdded := count(forward, models.DiffAdded)
	bwdRemoved := count(backward, models.DiffRemoved)
	if len(fwdAdded) != len(bwdRemoved) {
		t.Errorf("added lines of diff(a,b) = %v, removed lines of diff(b,a) = %v", fwdAdded, bwdRemoved)
	}
	for line, n := range fwdAdded {
		if bwdRemoved[line] != n {
			t.Errorf("line %d: added %d times forward, removed %d times backward", line, n, bwdRemoved[line])
		}
	}

	if len(forward) != len(backward) {
		t.Errorf("entry counts differ: %d vs %d", len(forward), len(backward))
	}
}
