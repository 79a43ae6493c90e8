// CLAUDE:SUMMARY Config with defaults plus the immutable Capabilities probe.
package pdfscan

import (
	"log/slog"
	"os/exec"
	"time"
)

// Config configures the extraction engine.
type Config struct {
	// MaxFileSize is the maximum source PDF size (default 100 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// OCRWordThreshold triggers the OCR fallback when the selected text
	// layer yields fewer words (default 100).
	OCRWordThreshold int `json:"ocr_word_threshold" yaml:"ocr_word_threshold"`

	// PreferredRatio is the fraction of the best candidate's word count the
	// preferred backend must reach to win selection (default 0.8).
	PreferredRatio float64 `json:"preferred_ratio" yaml:"preferred_ratio"`

	// BackendTimeout caps a single backend invocation per page (default
	// 30s). A slow backend is skipped, not retried.
	BackendTimeout time.Duration `json:"backend_timeout" yaml:"backend_timeout"`

	// ContextChars is captured around each fact match (default 100).
	ContextChars int `json:"context_chars" yaml:"context_chars"`

	// Capabilities controls which backends run. Zero value means
	// DetectCapabilities() at construction. Tests inject a custom value to
	// simulate e.g. "no OCR" without touching globals.
	Capabilities *Capabilities `json:"-" yaml:"-"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.OCRWordThreshold <= 0 {
		c.OCRWordThreshold = 100
	}
	if c.PreferredRatio <= 0 {
		c.PreferredRatio = 0.8
	}
	if c.BackendTimeout <= 0 {
		c.BackendTimeout = 30 * time.Second
	}
	if c.ContextChars <= 0 {
		c.ContextChars = 100
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Capabilities records which extraction backends are usable. It is built
// once at startup and passed in, never mutated: absence of a backend
// degrades capability, it is not an error.
type Capabilities struct {
	Basic  bool `json:"basic"`  // plain text-layer parser
	Layout bool `json:"layout"` // layout-aware parser (preferred backend)
	Render bool `json:"render"` // MuPDF renderer backend
	OCR    bool `json:"ocr"`    // rasterize + tesseract fallback
}

// DetectCapabilities probes the environment. The pure-Go backends are
// always present; OCR additionally needs the tesseract binary on PATH.
func DetectCapabilities(logger *slog.Logger) Capabilities {
	if logger == nil {
		logger = slog.Default()
	}
	caps := Capabilities{Basic: true, Layout: true, Render: true}

	if _, err := exec.LookPath("tesseract"); err == nil {
		caps.OCR = true
	} else {
		logger.Warn("tesseract not found, OCR fallback disabled")
	}
	return caps
}
