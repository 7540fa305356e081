package splice

import (
	"github.com/pmezard/go-difflib/difflib"
)

const diffContext = 3

// DiffCode returns a unified diff between two versions of a file, or an
// empty string when they are equal.
func DiffCode(before, after, name string) string {
	if before == after {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  diffContext,
	})
	if err != nil {
		return ""
	}

	return diff
}
