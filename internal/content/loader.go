package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// parseConcurrency caps the number of fixture files decoded in parallel.
const parseConcurrency = 8

// LoadDir reads every *.json file in dir as a Content object, for rebuilding
// a graph by replay. Files are decoded concurrently but returned in file-name
// order so replays are deterministic.
func LoadDir(ctx context.Context, dir string) ([]*Content, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	contents := make([]*Content, len(names))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(parseConcurrency)

	for i, name := range names {
		i, name := i, name
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			var c Content
			if err := json.Unmarshal(data, &c); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			contents[i] = &c
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}
