// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/attack-layers/pkg/types"
)

// Marshal encodes l as JSON indented by four spaces. HTML characters are
// left unescaped.
func Marshal(l types.Layer) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes l and writes it to path, replacing any existing file.
// The data goes to a temp file in the same directory that is renamed into
// place only after a successful write, so a failed run leaves no partial
// output. When path is a symlink the file it points to is replaced and the
// link is kept; an existing file keeps its permission bits. A symlink that
// cannot be resolved is an error. All failures are KindWrite errors.
func Write(path string, l types.Layer, w io.Writer) error {
	data, err := Marshal(l)
	if err != nil {
		return types.NewStageError("write", types.KindWrite, fmt.Errorf("marshaling layer: %w", err))
	}

	fmt.Fprintf(w, "writing %s\n", path)

	if err := writeFile(path, data); err != nil {
		return types.NewStageError("write", types.KindWrite, err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	path, mode, err := resolveTarget(path)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".layer-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	// CreateTemp creates files with mode 0600.
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	return nil
}

// resolveTarget follows a symlinked path to the file it names and returns
// that file's permission bits, or 0644 when it does not exist yet.
func resolveTarget(path string) (string, os.FileMode, error) {
	if fi, err := os.Lstat(path); err == nil && fi.Mode()&os.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return "", 0, fmt.Errorf("resolving symlink %s: %w", path, err)
		}
		path = resolved
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	return path, mode, nil
}
