// Package updater tells the operator when a newer greycodejs release exists.
// The latest release tag is read from GitHub Releases at most once a day and
// cached under the config directory; the notice printed on startup comes from
// that cache so no command waits on the network.
package updater
