// Package cli defines the Cobra command tree for the pakaje CLI. Each file
// in this package registers one top-level command (init, show, validate,
// config, version) with the root command. Commands delegate manifest work to
// internal/manifest and only handle flags, output formatting and logging.
package cli
