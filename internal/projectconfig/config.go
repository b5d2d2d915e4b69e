// Package projectconfig provides the ProjectConfig struct and loader for
// .hare.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spboyer/hare/internal/aggregate"
	"github.com/spboyer/hare/internal/utils"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".hare.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultDatasetsDir = "datasets/"

	DefaultMetric            = "accuracy"
	DefaultCurve             = "precision-recall"
	DefaultDecisionThreshold = 0.5

	// DefaultFormat is empty: pick table on a terminal and json otherwise.
	DefaultFormat = ""
)

// PathsConfig holds directory paths.
type PathsConfig struct {
	Datasets string `yaml:"datasets,omitempty"`
}

// DefaultsConfig holds default command parameters.
type DefaultsConfig struct {
	Metric            string   `yaml:"metric,omitempty"`
	Curve             string   `yaml:"curve,omitempty"`
	Format            string   `yaml:"format,omitempty"`
	DecisionThreshold *float64 `yaml:"decision_threshold,omitempty"`
}

// CurvesConfig holds threshold sweep settings.
type CurvesConfig struct {
	Thresholds []float64 `yaml:"thresholds,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .hare.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Curves   CurvesConfig   `yaml:"curves,omitempty"`

	// Dir is the directory of the loaded config file, empty when defaults
	// are used. Relative paths in the config are resolved against it.
	Dir string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Datasets: DefaultDatasetsDir,
		},
		Defaults: DefaultsConfig{
			Metric:            DefaultMetric,
			Curve:             DefaultCurve,
			Format:            DefaultFormat,
			DecisionThreshold: floatPtr(DefaultDecisionThreshold),
		},
		Curves: CurvesConfig{
			Thresholds: append([]float64(nil), aggregate.DefaultThresholds...),
		},
	}
}

// Load finds .hare.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, path, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := fileCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .hare.yaml (max 10 levels)
// and returns its content and path.
// Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, string, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// DatasetsDir returns the datasets directory, resolved against the
// directory of the config file it came from.
func (c *ProjectConfig) DatasetsDir() string {
	return utils.ResolvePath(c.Paths.Datasets, c.Dir)
}

func (c *ProjectConfig) validate() error {
	if th := c.Defaults.DecisionThreshold; th != nil && (*th < 0 || *th > 1) {
		return fmt.Errorf("defaults.decision_threshold must be in [0, 1], got %g", *th)
	}
	switch c.Defaults.Format {
	case "", "table", "json":
	default:
		return fmt.Errorf("defaults.format must be table or json, got %q", c.Defaults.Format)
	}
	return nil
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Datasets != "" {
		dst.Paths.Datasets = src.Paths.Datasets
	}

	// Defaults
	if src.Defaults.Metric != "" {
		dst.Defaults.Metric = src.Defaults.Metric
	}
	if src.Defaults.Curve != "" {
		dst.Defaults.Curve = src.Defaults.Curve
	}
	if src.Defaults.Format != "" {
		dst.Defaults.Format = src.Defaults.Format
	}
	if src.Defaults.DecisionThreshold != nil {
		dst.Defaults.DecisionThreshold = src.Defaults.DecisionThreshold
	}

	// Curves
	if len(src.Curves.Thresholds) > 0 {
		dst.Curves.Thresholds = src.Curves.Thresholds
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
