package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscape reports a FileMap entry whose path would resolve outside
// the project root. No file is written for such an entry.
var ErrPathEscape = errors.New("file path escapes project root")

// Materialize writes files under root in FileMap order, creating parent
// directories as needed. Every path is validated to stay inside root before
// anything is written for it. The first failure, or a cancelled context,
// aborts the remaining writes; files already written are left in place.
func Materialize(ctx context.Context, root string, files FileMap) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("materialization cancelled: %w", err)
		}

		target, err := securePath(root, f.Path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directories for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(target, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}

// securePath resolves a slash-separated relative path against root,
// rejecting absolute paths and any path that lexically escapes root.
func securePath(root, rel string) (string, error) {
	if rel == "" || strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, rel)
	}

	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || !filepath.IsLocal(clean) {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, rel)
	}

	return filepath.Join(root, clean), nil
}
