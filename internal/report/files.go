package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// WriteBucketFiles writes each severity bucket of the report to its own
// file: <base>.red, <base>.orange, and <base>.green. An extension on the
// basename is replaced, so "lic.txt" produces "lic.red" and friends.
// Missing parent directories are created.
//
// Files are written with owner-only permissions because they list the users
// holding each license.
func WriteBucketFiles(base string, rep *model.UsageReport, layout Layout) error {
	base = strings.TrimSuffix(base, filepath.Ext(base))

	dir := filepath.Dir(base)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, severity := range model.Severities {
		path := base + "." + severity.Extension()

		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // path derives from user-provided basename
		if err != nil {
			return fmt.Errorf("failed to create %s bucket file: %w", severity, err)
		}

		if _, err := RenderBucket(f, rep.Bucket(severity), layout); err != nil {
			_ = f.Close() //nolint:errcheck // Best effort cleanup
			return fmt.Errorf("failed to write %s bucket: %w", severity, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s bucket file: %w", severity, err)
		}
	}

	return nil
}
