// Package config manages user-level settings stored at ~/.greycodejs/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template source, the fetch mode, and the package manager used by "new".
package config
