package cliutil

import (
	"fmt"
	"os"
	"time"

	"github.com/erraggy/texmigrate/internal/fileutil"
)

// BackupFile copies path to "<path>.backup.<yyyymmdd_hhmmss>" and returns the
// backup path. When path does not exist there is nothing to preserve and it
// returns ("", nil).
func BackupFile(path string, now time.Time) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cliutil: failed to read %s for backup: %w", path, err)
	}

	backupPath := fmt.Sprintf("%s.backup.%s", path, now.Format("20060102_150405"))
	if err := os.WriteFile(backupPath, data, fileutil.OwnerReadWrite); err != nil {
		return "", fmt.Errorf("cliutil: failed to write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}
