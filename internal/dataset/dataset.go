// Package dataset loads evaluator datasets: a named set of labelled
// conversations plus the detector that should score them.
package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spboyer/hare/internal/models"
	"github.com/spboyer/hare/internal/validation"
	"gopkg.in/yaml.v3"
)

// DetectorSpec names a detector type and its parameters.
type DetectorSpec struct {
	Type   string         `yaml:"type" json:"type"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// Dataset is the content of one evaluator file.
type Dataset struct {
	Name          string                 `yaml:"name" json:"name"`
	Threshold     *float64               `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Detector      DetectorSpec           `yaml:"detector,omitempty" json:"detector,omitempty"`
	Conversations []*models.Conversation `yaml:"conversations" json:"conversations"`

	// Path is the file the dataset was loaded from.
	Path string `yaml:"-" json:"-"`
}

// InvalidError reports a dataset file that was read successfully but does
// not describe a valid dataset.
type InvalidError struct {
	Path     string
	Problems []string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("%s: invalid dataset: %s", e.Path, strings.Join(e.Problems, "; "))
}

// Load reads a dataset from path. The format follows the extension:
// .yaml, .yml and .json are schema-validated documents, .csv is one
// utterance per row. A trailing .gz or .zst is decompressed first.
func Load(path string) (*Dataset, error) {
	data, ext, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var ds *Dataset
	switch ext {
	case ".yaml", ".yml", ".json":
		ds, err = decodeDocument(path, data)
	case ".csv":
		ds, err = decodeCSV(path, data)
	default:
		return nil, fmt.Errorf("%s: unsupported dataset format %q", path, ext)
	}
	if err != nil {
		return nil, err
	}

	ds.Path = path
	if ds.Name == "" {
		ds.Name = baseName(path)
	}
	return ds, nil
}

// readFile returns the (decompressed) content of path and the extension
// that describes its format.
func readFile(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("dataset: gzip %s: %w", path, err)
		}
		defer gz.Close() //nolint:errcheck
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, "", fmt.Errorf("dataset: zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return data, formatExt(path), nil
}

// formatExt returns the extension that describes the format of path,
// looking through a compression suffix.
func formatExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" || ext == ".zst" {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	return ext
}

// Supported reports whether Load understands the file name.
func Supported(name string) bool {
	switch formatExt(name) {
	case ".yaml", ".yml", ".json", ".csv":
		return true
	}
	return false
}

func decodeDocument(path string, data []byte) (*Dataset, error) {
	if problems := validation.ValidateDatasetBytes(data); len(problems) > 0 {
		return nil, &InvalidError{Path: path, Problems: problems}
	}

	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}
	return &ds, nil
}

// baseName strips the directory and every extension from path, so
// "runs/bigru.yaml.gz" becomes "bigru".
func baseName(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
