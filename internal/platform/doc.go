// Package platform provides cross-platform filesystem operations: copying
// trees, creating symlinks, and setting permission bits. On Windows,
// permission changes are no-ops and symlinks fall back to file copies when
// developer mode is unavailable.
package platform
