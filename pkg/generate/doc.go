// Package generate writes PHPUnit scaffolding into an extension.
//
// A Generator produces three artifacts per request: the phpunit.xml.dist
// configuration, the tests/phpunit/bootstrap.php file and the test class
// itself. Existing files are never overwritten. The shared configuration and
// bootstrap files are skipped quietly when present; an existing test class is
// reported as an error-level skip so the user notices the name clash.
//
// Every outcome is recorded in a types.Report. Artifacts are handled one
// after the other and nothing written by an earlier artifact is undone when a
// later one fails.
package generate
