package templates

import (
	"sort"
	"strings"

	"github.com/civixgo/civix/pkg/errors"
)

// Kind is a user-facing test template keyword
type Kind string

const (
	KindHeadless Kind = "headless"
	KindE2E      Kind = "e2e"
	KindLegacy   Kind = "legacy"

	// DefaultKind is used when no --template is given
	DefaultKind = KindHeadless
)

// testTemplates is the closed mapping from keyword to template
var testTemplates = map[Kind]ID{
	KindE2E:      TestE2E,
	KindHeadless: TestHeadless,
	KindLegacy:   TestLegacy,
}

// Select maps a template keyword to its template identifier. Matching is
// exact: no fallback, no case folding.
func Select(keyword string) (ID, error) {
	if id, ok := testTemplates[Kind(keyword)]; ok {
		return id, nil
	}
	return "", errors.Newf(errors.ErrUnknownTemplate,
		"invalid test template %q (valid: %s)", keyword, strings.Join(Keywords(), ", ")).
		WithDetail("template", keyword)
}

// Keywords returns the accepted keywords in sorted order
func Keywords() []string {
	out := make([]string, 0, len(testTemplates))
	for k := range testTemplates {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}
