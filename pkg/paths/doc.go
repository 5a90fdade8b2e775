// Package paths provides centralized path handling for civix.
//
// It locates the extension a command operates on and the per-user XDG
// locations civix reads configuration from and writes logs to.
//
// # Extension discovery
//
// The extension directory is resolved with the following priority:
//
//   - an explicit directory (the --ext-dir flag)
//   - the CIVIX_EXT_DIR environment variable
//   - the nearest ancestor of the working directory containing info.xml
//
// # Environment Variables
//
//   - CIVIX_EXT_DIR: extension directory
//   - CIVIX_CONFIG_DIR: override the XDG config directory (default: $XDG_CONFIG_HOME/civix)
//   - XDG_STATE_HOME: state directory used for the log file
package paths
