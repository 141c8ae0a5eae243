// Package runtime drives the Node.js toolchain on behalf of a scaffolded
// project: the package manager that installs dependencies and links the CLI
// globally, and the node binary whose version is checked against the
// project's engines constraint. ForName selects a package manager by its
// command name.
package runtime
