// Package types defines the core types and interfaces shared by the civix
// packages: the filesystem abstraction, the generation context that is
// threaded through one invocation, and the report of filesystem actions.
package types
