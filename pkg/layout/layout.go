// Package layout maps logical names to the physical files civix generates
// inside an extension. Everything here is pure string manipulation: no
// function in this package touches the filesystem.
package layout

import (
	"path/filepath"
	"strings"

	"github.com/civixgo/civix/pkg/identifier"
)

const (
	// ConfigFile is the PHPUnit configuration written at the extension root
	ConfigFile = "phpunit.xml.dist"

	// BootstrapFile is the PHPUnit bootstrap written under the test root
	BootstrapFile = "bootstrap.php"

	// TestExtension is appended to generated test classes
	TestExtension = ".php"
)

// testRootSegments is the fixed test root relative to the extension
var testRootSegments = []string{"tests", "phpunit"}

// Resolution is the result of mapping a class name onto the test tree
type Resolution struct {
	// FilePath is the absolute (or root-relative) path of the test class file
	FilePath string
	// Namespace is everything before the last separator, "" if none
	Namespace string
	// Symbol is the short class name
	Symbol string
}

// Dir returns the directory that must exist before FilePath is written
func (r Resolution) Dir() string {
	return filepath.Dir(r.FilePath)
}

// pathReplacer converts both the namespace separator and the historical
// underscore convention (CRM_Foo_Bar) into path separators.
var pathReplacer = strings.NewReplacer(identifier.Separator, "/", "_", "/")

// Resolve computes where the test class name lives under root.
func Resolve(name identifier.FullyQualifiedName, root string) Resolution {
	segments := name.Segments()
	symbol := segments[len(segments)-1]
	namespace := strings.Join(segments[:len(segments)-1], identifier.Separator)

	rel := filepath.FromSlash(pathReplacer.Replace(name.String()) + TestExtension)

	return Resolution{
		FilePath:  filepath.Join(TestRoot(root), rel),
		Namespace: namespace,
		Symbol:    symbol,
	}
}

// TestRoot returns <root>/tests/phpunit
func TestRoot(root string) string {
	return filepath.Join(append([]string{root}, testRootSegments...)...)
}

// ConfigPath returns the path of phpunit.xml.dist
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFile)
}

// BootstrapPath returns the path of tests/phpunit/bootstrap.php
func BootstrapPath(root string) string {
	return filepath.Join(TestRoot(root), BootstrapFile)
}

// TestRootRel returns the test root relative to the extension, slash separated
func TestRootRel() string {
	return strings.Join(testRootSegments, "/")
}

// BootstrapRel returns the bootstrap path relative to the extension, slash separated
func BootstrapRel() string {
	return TestRootRel() + "/" + BootstrapFile
}
