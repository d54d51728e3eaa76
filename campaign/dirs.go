package campaign

// dirs.go manages the fixed on-disk layout used by a campaign. Directory
// creation is idempotent so an interrupted campaign can be re-invoked
// against the tree it left behind.

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDirectory creates path (and missing parents) if it does not
// exist. An existing directory is a no-op; an existing non-directory is
// a configuration error.
func EnsureDirectory(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return &ConfigError{Msg: fmt.Sprintf("path exists but is not a directory: %s", path)}
	}
	if !os.IsNotExist(err) {
		return &IOError{Msg: fmt.Sprintf("failed to stat %s", path), Cause: err}
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return &IOError{Msg: fmt.Sprintf("failed to create directory %s", path), Cause: err}
	}
	return nil
}

// Layout is the three-level output tree rooted at a single output
// directory: the root itself, a library-staging subdirectory for the
// manifest jar, and a campaign-state subdirectory owned by the fuzzing
// framework.
type Layout struct {
	root string
}

func NewLayout(root string) Layout {
	return Layout{root: root}
}

func (l Layout) Root() string { return l.root }

// LibraryDir holds staged artifacts, most importantly the manifest jar.
func (l Layout) LibraryDir() string { return filepath.Join(l.root, "lib") }

// CampaignDir is owned by the framework for its persistent run state
// (corpus, failures, internal bookkeeping). The orchestrator only
// guarantees its existence, never its contents.
func (l Layout) CampaignDir() string { return filepath.Join(l.root, "campaign") }

// Ensure creates the full layout. Failure to create any of the three
// directories is fatal to campaign startup.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.root, l.LibraryDir(), l.CampaignDir()} {
		if err := EnsureDirectory(dir); err != nil {
			return err
		}
	}
	return nil
}
