package schema

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SystemConfig is the expected shape of the system defaults document.
type SystemConfig struct {
	LogLevel string       `yaml:"log-level"`
	Threads  ThreadConfig `yaml:"threads"`
}

// ThreadConfig holds per-subsystem worker thread counts.
type ThreadConfig struct {
	Perception int `yaml:"perception"`
	Reasoning  int `yaml:"reasoning"`
	Audio      int `yaml:"audio"`
}

// HardwareConfig is the expected shape of the hardware profile document.
type HardwareConfig struct {
	Camera     CameraConfig     `yaml:"camera"`
	Microphone MicrophoneConfig `yaml:"microphone"`
	Perception PerceptionConfig `yaml:"perception"`
	Reasoning  ReasoningConfig  `yaml:"reasoning"`
}

// CameraConfig identifies the capture device and its resolution.
type CameraConfig struct {
	DeviceID   int        `yaml:"device-id"`
	Resolution Resolution `yaml:"resolution"`
}

// Resolution is a frame size in pixels.
type Resolution struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MicrophoneConfig identifies the audio capture device.
type MicrophoneConfig struct {
	DeviceID    int               `yaml:"device-id"`
	SampleRate  int               `yaml:"sample-rate"`
	NoiseFilter NoiseFilterConfig `yaml:"noise-filter"`
}

// NoiseFilterConfig controls input noise suppression.
type NoiseFilterConfig struct {
	Enabled    bool `yaml:"enabled"`
	WindowSize int  `yaml:"window-size"`
}

// PerceptionConfig locates the perception models and their thresholds.
type PerceptionConfig struct {
	ModelPaths map[string]string  `yaml:"model-paths"`
	Thresholds map[string]float64 `yaml:"thresholds"`
}

// ReasoningConfig holds the language model settings.
type ReasoningConfig struct {
	LLM LLMConfig `yaml:"llm"`
}

// LLMConfig locates the language model and sizes its context window.
type LLMConfig struct {
	ModelPath   string `yaml:"model-path"`
	ContextSize int    `yaml:"context-size"`
}

// ProfileConfig is the expected shape of the user profile document.
type ProfileConfig struct {
	UserName         string           `yaml:"user-name"`
	KnownFacesDBPath string           `yaml:"known-faces-db-path"`
	AlertPreferences AlertPreferences `yaml:"alert-preferences"`
}

// AlertPreferences selects which detections alert the user and how.
type AlertPreferences struct {
	DangerousObjects []string `yaml:"dangerous-objects"`
	PlaySounds       bool     `yaml:"play-sounds"`
}

// DecodeStrict unmarshals a document into out, rejecting unknown fields so
// typos in deployed documents surface early.
func DecodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	return nil
}

// Validate checks the system defaults for required fields and sane ranges.
func (c *SystemConfig) Validate() error {
	var errs []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		errs = append(errs, "log-level is required")
	default:
		errs = append(errs, fmt.Sprintf("log-level %q is not one of debug/info/warn/error", c.LogLevel))
	}

	if c.Threads.Perception < 1 {
		errs = append(errs, "threads.perception must be at least 1")
	}
	if c.Threads.Reasoning < 1 {
		errs = append(errs, "threads.reasoning must be at least 1")
	}
	if c.Threads.Audio < 1 {
		errs = append(errs, "threads.audio must be at least 1")
	}

	return joinErrs(errs)
}

// Validate checks the hardware profile for required fields and sane ranges.
func (c *HardwareConfig) Validate() error {
	var errs []string

	if c.Camera.DeviceID < 0 {
		errs = append(errs, "camera.device-id must not be negative")
	}
	if c.Camera.Resolution.Width < 1 || c.Camera.Resolution.Height < 1 {
		errs = append(errs, "camera.resolution must be a positive width and height")
	}
	if c.Microphone.SampleRate < 1 {
		errs = append(errs, "microphone.sample-rate must be positive")
	}
	if c.Reasoning.LLM.ModelPath == "" {
		errs = append(errs, "reasoning.llm.model-path is required")
	}
	if c.Reasoning.LLM.ContextSize < 1 {
		errs = append(errs, "reasoning.llm.context-size must be positive")
	}
	for name, threshold := range c.Perception.Thresholds {
		if threshold < 0 || threshold > 1 {
			errs = append(errs, fmt.Sprintf("perception.thresholds.%s must be within [0, 1]", name))
		}
	}

	return joinErrs(errs)
}

// Validate checks the user profile for required fields.
func (c *ProfileConfig) Validate() error {
	var errs []string

	if c.UserName == "" {
		errs = append(errs, "user-name is required")
	}
	if c.KnownFacesDBPath == "" {
		errs = append(errs, "known-faces-db-path is required")
	}

	return joinErrs(errs)
}

func joinErrs(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
}
