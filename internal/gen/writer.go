package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files next to their template files.
func WriteFiles(files []*GeneratedFile) error {
	for _, file := range files {
		if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(file.Path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}

// Check compares the generated files with what is on disk and returns the
// paths that are missing or out of date, sorted.
func Check(files []*GeneratedFile) ([]string, error) {
	var stale []string

	for _, file := range files {
		onDisk, err := os.ReadFile(file.Path)
		if os.IsNotExist(err) {
			stale = append(stale, file.Path)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", file.Path, err)
		}

		if !bytes.Equal(onDisk, file.Content) {
			stale = append(stale, file.Path)
		}
	}

	sort.Strings(stale)

	return stale, nil
}
