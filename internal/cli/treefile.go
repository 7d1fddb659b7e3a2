package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/treegraft/treegraft/pkg/errors"
	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
	"github.com/treegraft/treegraft/pkg/treeio"
)

// detectFormat guesses the tree format from a file extension.
// Unknown extensions default to newick, the common interchange format.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "newick"
	}
}

// readTreeFile loads a tree from path, detecting the format from the
// extension unless format is set explicitly.
func readTreeFile(path, format string) (*forest.Tree[newick.Label], error) {
	if format == "" {
		format = detectFormat(path)
	}

	switch format {
	case "json":
		return treeio.ImportJSON(path)
	case "newick":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read %s", path)
		}
		t, err := newick.Parse(string(data))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "parse %s", path)
		}
		return t, nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported input format: %q", format)
	}
}

// writeTree serializes t in the given format to path, or stdout when
// path is empty.
func writeTree(t *forest.Tree[newick.Label], path, format string) error {
	if format == "" && path != "" {
		format = detectFormat(path)
	}
	if format == "" {
		format = "newick"
	}

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case "json":
		return treeio.WriteJSON(t, out)
	case "newick":
		s, err := newick.Write(t)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	default:
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported output format: %q", format)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
