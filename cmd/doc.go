// Package cmd provides the command-line interface for vitewind.
//
// Configuration is read, in order of precedence, from command-line flags,
// VITEWIND_ environment variables (VITEWIND_PIPELINE_VCS_INIT and so on) and a
// .vitewind.yml file in the working directory. The file location can be
// changed with --config or VITEWIND_CONFIG_FILE.
//
// # Available Commands
//
//   - (root), create: generate a Vite + React + Tailwind CSS project
//   - doctor: check that node, npm, npx and git are usable
//   - config show, config validate: inspect configuration
//   - version: build information
//
// # Command Examples
//
//	// Interactive run
//	vitewind
//
//	// Scripted run with every answer given
//	vitewind create storefront --lang ts --force
//
//	// Accept defaults, skip git
//	vitewind --yes --no-git
//
//	// Machine readable environment check
//	vitewind doctor -o json
//
// # Exit Status
//
// 0 on success. A run cancelled at the existing-directory menu exits with
// cancel_exit_code (0 by default); an interrupted run exits 130. A failing
// tool propagates its own exit status, any other failure exits 1.
package cmd
