package fs

import (
	"context"
	"os"
	"path/filepath"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure StagedStore implements browseruse.CaptureWriter at compile time.
var _ browseruse.CaptureWriter = (*StagedStore)(nil)

// StagedStore writes captures with atomic replace semantics.
// Captures are saved to a temporary directory, then moved atomically
// over the previous output on Commit. This keeps the output directory
// consistent when a site is re-captured.
type StagedStore struct {
	baseDir string
	name    string
}

// NewStagedStore creates a new StagedStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStagedStore(baseDir, name string) *StagedStore {
	return &StagedStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *StagedStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *StagedStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// SaveCapture writes a capture into the staging directory.
func (s *StagedStore) SaveCapture(ctx context.Context, capture *browseruse.Capture) error {
	return NewWriter(s.tempDir()).SaveCapture(ctx, capture)
}

// Commit atomically replaces the output directory with the staged one.
func (s *StagedStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards the staging directory.
func (s *StagedStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
