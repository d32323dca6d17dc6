// Package internal contains the implementation packages for vitewind.
//
// # Package Organization
//
//   - config: viper-backed configuration and the per-run Session
//   - prompt: line-based questions with defaults and numbered menus
//   - guard: resolves a collision with an existing project directory
//   - runner: allowlisted subprocess execution with status lines
//   - templates: static project files and the synchronous afero writer
//   - scaffold: the plan of tool invocations and the pipeline that runs it
//   - report: completion banner and next steps
//   - errors: typed errors, exit codes and recovery suggestions
//   - logging: slog-based structured logging
//   - validation: allowlist checks for tool names and version tags
//   - version: build information
//   - testutils: recording runner and fixtures for tests
//
// # Flow
//
// The scaffold pipeline asks for the project name, lets the guard resolve
// any existing directory, asks for the language, then runs each planned
// command through the runner. Template files are written once the Tailwind
// initializer has finished and before git stages the tree. The first
// failure ends the run.
//
// # Security Considerations
//
// Commands are executed as argument vectors and never through a shell. The
// binaries that may run are restricted to npm, npx and git (and node for
// doctor), and configured version tags are checked against a strict
// pattern before they reach a command line.
package internal
