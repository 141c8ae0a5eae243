// Package cli defines the Cobra command tree for the greycodejs CLI. Each file
// in this package registers one top-level command (new, install-global,
// config, version) with the root command. Commands delegate to the scaffold,
// fetch and runtime packages and only handle flags, I/O formatting, and
// operator interaction.
package cli
