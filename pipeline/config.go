// CLAUDE:SUMMARY Pipeline configuration structs and YAML loader.
package pipeline

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all pipeline configuration.
type Config struct {
	// ReportPDF is the audit report to process.
	ReportPDF string `yaml:"report_pdf"`
	// ConstitutionPDF is optional; without it the constitution stage is
	// skipped and validation runs against a previously extracted file.
	ConstitutionPDF string `yaml:"constitution_pdf"`

	// OutputDir is the root for all stage outputs.
	OutputDir string `yaml:"output_dir"`
	// RunLogDB is the SQLite run log path; empty disables run logging.
	RunLogDB string `yaml:"runlog_db"`

	Extraction ExtractionConfig `yaml:"extraction"`

	// Stages toggles individual stages; all default to on.
	Stages StageToggles `yaml:"stages"`

	Logger *slog.Logger `yaml:"-"`
}

// ExtractionConfig tunes stage 1. Zero values fall back to the extraction
// engine's defaults.
type ExtractionConfig struct {
	OCRWordThreshold int     `yaml:"ocr_word_threshold"`
	PreferredRatio   float64 `yaml:"preferred_ratio"`
	MaxFileSizeBytes int64   `yaml:"max_file_size"`
}

// StageToggles uses pointers so an omitted key means enabled.
type StageToggles struct {
	Extract      *bool `yaml:"extract"`
	Constitution *bool `yaml:"constitution"`
	Tag          *bool `yaml:"tag"`
	Consolidate  *bool `yaml:"consolidate"`
	Validate     *bool `yaml:"validate"`
}

func enabled(b *bool) bool { return b == nil || *b }

func (c *Config) defaults() {
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Stage output directories, rooted at OutputDir.
func (c *Config) stage1Dir() string     { return filepath.Join(c.OutputDir, "stage1") }
func (c *Config) stage2Dir() string     { return filepath.Join(c.OutputDir, "stage2") }
func (c *Config) stage3Dir() string     { return filepath.Join(c.OutputDir, "stage3") }
func (c *Config) validationDir() string { return filepath.Join(c.OutputDir, "validation") }
func (c *Config) constitutionDir() string {
	return filepath.Join(c.OutputDir, "constitution")
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
