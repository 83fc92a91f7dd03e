// Package textdiff computes and renders character-level differences
// between two texts, typically encoded documents.
package textdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes the difference between from and to, cleaned up for
// readability.
func Diff(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Equal reports whether diffs contain no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Render writes diffs as one text. Colored output paints insertions
// green and deletions red; plain output brackets them as +{...} and
// -{...}.
func Render(diffs []diffpatch.Diff, colored bool) string {
	var b strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				b.WriteString(color.GreenString("%s", d.Text))
			} else {
				b.WriteString("+{" + d.Text + "}")
			}
		case diffpatch.DiffDelete:
			if colored {
				b.WriteString(color.RedString("%s", d.Text))
			} else {
				b.WriteString("-{" + d.Text + "}")
			}
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
