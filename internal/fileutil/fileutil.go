// Package fileutil defines shared file permission modes.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for merged documents, backups,
// reports, and config files (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
