// Parses flags and configures logging for the guestbake tool.
//
// The tool accepts the following global flags:
//
//	-q, --quiet   Suppress informational output.
//	-d, --debug   Enable debug output.
//
// The bake subcommand carries the workspace selector, package filters,
// feature flags, and the containerized-build toggle. After parsing, the
// process log level is adjusted to reflect the flags before the
// subcommand runs.
package cli
