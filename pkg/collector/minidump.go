package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sysvitals/eventscope/pkg/event"
)

// MinidumpScanner lists crash-dump files whose modification time falls in
// the collection window. Dump contents are never read, only file metadata.
type MinidumpScanner struct {
	// Dir is the directory holding crash-dump files.
	Dir string
}

// dumpExtension marks crash-dump files.
const dumpExtension = ".dmp"

// Scan returns the metadata of every dump file modified within [start, end).
// A missing dump directory is a normal outcome (the host never crashed) and
// yields an empty result.
func (m *MinidumpScanner) Scan(ctx context.Context, start, end time.Time) ([]event.MinidumpFile, error) {
	entries, err := os.ReadDir(m.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading dump directory %s: %w", m.Dir, err)
	}

	var dumps []event.MinidumpFile
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), dumpExtension) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}

		mod := info.ModTime()
		if mod.Before(start) || !mod.Before(end) {
			continue
		}

		dumps = append(dumps, event.MinidumpFile{
			Name:  entry.Name(),
			Path:  filepath.Join(m.Dir, entry.Name()),
			SizeB: info.Size(),
			// Creation time is not portably available; the dump is written
			// once at crash time, so modification time stands in for both.
			Created:  mod,
			Modified: mod,
		})
	}
	return dumps, nil
}
