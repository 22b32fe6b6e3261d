package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileFetcher reads source files from a local directory.
type FileFetcher struct {
	Dir string
}

func NewFileFetcher(dir string) *FileFetcher { return &FileFetcher{Dir: dir} }

func (f *FileFetcher) Name() string { return "file" }

func (f *FileFetcher) Fetch(_ context.Context, file string) (string, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, file))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}
