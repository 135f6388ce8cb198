// Package config provides configuration helpers for capture commands.
package config

import "os"

// Default capture configuration.
const (
	DefaultFrameCount = 100
	DefaultFrameRate  = 30.0
)

// ScriptPath returns the capture script path from the CAM_SCRIPT env var.
// Falls back to the provided default if not set.
func ScriptPath(defaultPath string) string {
	if path := os.Getenv("CAM_SCRIPT"); path != "" {
		return path
	}
	return defaultPath
}

// CameraName returns the camera name from the CAM_CAMERA env var.
// Falls back to the provided default if not set.
func CameraName(defaultName string) string {
	if name := os.Getenv("CAM_CAMERA"); name != "" {
		return name
	}
	return defaultName
}

// LogLevel returns the log level from the CAM_LOG_LEVEL env var.
// Falls back to "info" if not set.
func LogLevel() string {
	if level := os.Getenv("CAM_LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}
