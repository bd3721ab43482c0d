// Package export writes rendering-parameter mappings to files, so computed
// destination tables can be inspected or fed into other tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/rcparams"
)

// WriteJSON encodes params as indented JSON and writes it to w.
// Keys are emitted in sorted order (encoding/json sorts map keys).
func WriteJSON(params rcparams.Params, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stringKeyed(params)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes params as TOML and writes it to w. Dotted setting names
// come out as quoted keys ("font.size" = 18.75).
func WriteTOML(params rcparams.Params, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(stringKeyed(params)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes params to a file at path, choosing the codec from the
// extension: .json or .toml. Other extensions are rejected.
func Export(params rcparams.Params, path string) error {
	var write func(rcparams.Params, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".toml":
		write = WriteTOML
	default:
		return errors.New(errors.ErrCodeInvalidPath, "unsupported output format %q (want .json or .toml)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return write(params, f)
}

// stringKeyed converts Params to a plain map for the encoders, which do not
// know the Key type.
func stringKeyed(params rcparams.Params) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[string(k)] = v
	}
	return out
}
