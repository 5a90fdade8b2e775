// Package identifier validates the fully-qualified class names users pass to
// the test generator.
package identifier

import (
	"regexp"
	"strings"

	"github.com/civixgo/civix/pkg/errors"
)

const (
	// Separator is the namespace separator of a fully-qualified name
	Separator = `\`

	// RequiredSuffix is the word every test class name must end with
	RequiredSuffix = "Test"
)

var validChars = regexp.MustCompile(`^[A-Za-z0-9_\\]+$`)

// FullyQualifiedName is a class name that passed Validate
type FullyQualifiedName struct {
	name string
}

// String returns the trimmed name
func (n FullyQualifiedName) String() string {
	return n.name
}

// Segments returns the name split on the namespace separator
func (n FullyQualifiedName) Segments() []string {
	return strings.Split(n.name, Separator)
}

// Validate trims surrounding separators from name and checks it against the
// character set and the "Test" suffix rule. Every namespace segment must be
// non-empty, so doubled inner separators are rejected.
func Validate(name string) (FullyQualifiedName, error) {
	trimmed := strings.Trim(name, Separator)

	if !validChars.MatchString(trimmed) {
		return FullyQualifiedName{}, errors.New(errors.ErrInvalidIdentifier,
			"Class name must be alphanumeric (with underscores and backslashes)").
			WithDetail("name", name)
	}
	if strings.Contains(trimmed, Separator+Separator) {
		return FullyQualifiedName{}, errors.New(errors.ErrInvalidIdentifier,
			"Class name must not contain empty namespace segments").
			WithDetail("name", name)
	}
	if !strings.HasSuffix(trimmed, RequiredSuffix) {
		return FullyQualifiedName{}, errors.New(errors.ErrInvalidIdentifier,
			`Class name must end with the word "Test"`).
			WithDetail("name", name)
	}

	return FullyQualifiedName{name: trimmed}, nil
}
