package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSystem = `
log-level: info
threads:
  perception: 2
  reasoning: 1
  audio: 1
`

const validHardware = `
camera:
  device-id: 0
  resolution:
    width: 1280
    height: 720
microphone:
  device-id: 1
  sample-rate: 16000
  noise-filter:
    enabled: true
    window-size: 512
perception:
  model-paths:
    detector: /opt/models/detector.onnx
  thresholds:
    detector: 0.6
reasoning:
  llm:
    model-path: /opt/models/llm.gguf
    context-size: 4096
`

const validProfile = `
user-name: joao
known-faces-db-path: /var/lib/faces.db
alert-preferences:
  dangerous-objects:
    - knife
    - scissors
  play-sounds: true
`

func TestDecodeStrict_ValidDocuments(t *testing.T) {
	var system SystemConfig
	require.NoError(t, DecodeStrict([]byte(validSystem), &system))
	require.NoError(t, system.Validate())
	assert.Equal(t, "info", system.LogLevel)
	assert.Equal(t, 2, system.Threads.Perception)

	var hardware HardwareConfig
	require.NoError(t, DecodeStrict([]byte(validHardware), &hardware))
	require.NoError(t, hardware.Validate())
	assert.Equal(t, 0, hardware.Camera.DeviceID)
	assert.Equal(t, 0.6, hardware.Perception.Thresholds["detector"])

	var profile ProfileConfig
	require.NoError(t, DecodeStrict([]byte(validProfile), &profile))
	require.NoError(t, profile.Validate())
	assert.Equal(t, []string{"knife", "scissors"}, profile.AlertPreferences.DangerousObjects)
}

func TestDecodeStrict_RejectsUnknownFields(t *testing.T) {
	var system SystemConfig
	err := DecodeStrict([]byte("log-level: info\nlog-levle: oops\n"), &system)
	assert.Error(t, err)
}

func TestValidate_SystemErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  SystemConfig
	}{
		{"missing log level", SystemConfig{Threads: ThreadConfig{Perception: 1, Reasoning: 1, Audio: 1}}},
		{"unknown log level", SystemConfig{LogLevel: "loud", Threads: ThreadConfig{Perception: 1, Reasoning: 1, Audio: 1}}},
		{"zero threads", SystemConfig{LogLevel: "info"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}

func TestValidate_HardwareThresholdRange(t *testing.T) {
	var hardware HardwareConfig
	require.NoError(t, DecodeStrict([]byte(validHardware), &hardware))

	hardware.Perception.Thresholds["detector"] = 1.5
	err := hardware.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thresholds.detector")
}

func TestValidate_ProfileRequiredFields(t *testing.T) {
	var profile ProfileConfig
	assert.Error(t, profile.Validate())
}
