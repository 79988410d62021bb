// Package config holds the settings shared by the jsondiff commands and the
// logic to read them from YAML, TOML or JSON files.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wonderfulspam/jsondiff/pkg/parser"
	"github.com/wonderfulspam/jsondiff/pkg/renderer"
)

// DefaultFile is looked up in the working directory when no config path is given
const DefaultFile = ".jsondiff.yml"

// CurrentVersion is the only config schema version understood
const CurrentVersion = 1

// Config holds the overall jsondiff configuration
type Config struct {
	Version   int             `yaml:"version" toml:"version" json:"version"`
	Diff      DiffConfig      `yaml:"diff" toml:"diff" json:"diff"`
	Normalize NormalizeConfig `yaml:"normalize" toml:"normalize" json:"normalize"`
	Input     InputConfig     `yaml:"input" toml:"input" json:"input"`
	Output    OutputConfig    `yaml:"output" toml:"output" json:"output"`
}

type DiffConfig struct {
	// Context is the number of unchanged lines shown around each change
	Context int `yaml:"context" toml:"context" json:"context"`
	// OutputNormalized writes both canonical documents next to the report
	OutputNormalized bool     `yaml:"output_normalized" toml:"output_normalized" json:"output_normalized"`
	NormalizedFiles  []string `yaml:"normalized_files" toml:"normalized_files" json:"normalized_files"`
}

type NormalizeConfig struct {
	Arrays bool `yaml:"arrays" toml:"arrays" json:"arrays"`
}

type InputConfig struct {
	Format string `yaml:"format" toml:"format" json:"format"`
}

type OutputConfig struct {
	Format   string `yaml:"format" toml:"format" json:"format"`
	Color    string `yaml:"color" toml:"color" json:"color"`
	ExitCode bool   `yaml:"exit_code" toml:"exit_code" json:"exit_code"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Diff: DiffConfig{
			Context:         renderer.DefaultContext,
			NormalizedFiles: []string{"normalized1.json", "normalized2.json"},
		},
		Normalize: NormalizeConfig{
			Arrays: true,
		},
		Input: InputConfig{
			Format: string(parser.FormatAuto),
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

type fileFormat int

const (
	formatYAML fileFormat = iota
	formatTOML
	formatJSON
)

func formatFor(filename string) fileFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return formatTOML
	case ".json":
		return formatJSON
	default:
		return formatYAML
	}
}

// LoadConfig loads configuration from a file. The format follows the file
// extension: .toml, .json, anything else is YAML. Settings missing from the
// file keep their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch formatFor(filename) {
	case formatTOML:
		_, err = toml.Decode(string(data), config)
	case formatJSON:
		err = json.Unmarshal(data, config)
	default:
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return config, nil
}

// LoadOrDefault loads filename when given, otherwise DefaultFile when it
// exists, otherwise returns DefaultConfig. The second result names the file
// that was read and is empty for the defaults.
func LoadOrDefault(filename string) (*Config, string, error) {
	if filename == "" {
		if _, err := os.Stat(DefaultFile); errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), "", nil
		}
		filename = DefaultFile
	}

	config, err := LoadConfig(filename)
	if err != nil {
		return nil, "", err
	}
	return config, filename, nil
}

// SaveConfig saves configuration to a file in the format chosen by its extension
func SaveConfig(config *Config, filename string) error {
	data, err := Marshal(config, filename)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Marshal encodes config in the format SaveConfig would use for filename
func Marshal(config *Config, filename string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch formatFor(filename) {
	case formatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(config)
		data = buf.Bytes()
	case formatJSON:
		data, err = json.MarshalIndent(config, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks that every setting holds a supported value
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version %d (expected %d)", c.Version, CurrentVersion)
	}

	if c.Diff.Context < 0 {
		return fmt.Errorf("diff.context must not be negative, got %d", c.Diff.Context)
	}
	if len(c.Diff.NormalizedFiles) != 2 {
		return fmt.Errorf("diff.normalized_files must name exactly 2 files, got %d", len(c.Diff.NormalizedFiles))
	}
	for i, name := range c.Diff.NormalizedFiles {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("diff.normalized_files[%d]: file name is required", i)
		}
	}
	if c.Diff.NormalizedFiles[0] == c.Diff.NormalizedFiles[1] {
		return fmt.Errorf("diff.normalized_files must be distinct, both are %q", c.Diff.NormalizedFiles[0])
	}

	if _, err := parser.ParseFormat(c.Input.Format); err != nil {
		return fmt.Errorf("input.format: %w", err)
	}

	switch c.Output.Format {
	case "text", "color", "json":
	default:
		return fmt.Errorf("output.format: unsupported format: %s (supported: text, color, json)", c.Output.Format)
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported mode: %s (supported: auto, always, never)", c.Output.Color)
	}

	return nil
}
