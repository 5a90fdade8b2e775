// Package testutil provides test environments for civix components.
//
// A TestEnvironment holds an extension directory with an info.xml, a
// filesystem (in memory or a real temp dir) and isolated config and state
// directories, so tests never touch the user's files.
//
// Usage guidelines:
//   - most tests should use EnvMemoryOnly for speed and isolation
//   - use EnvIsolated when code under test reads the real filesystem
//     (config files, working directory discovery)
package testutil
