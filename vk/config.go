package vk

import (
	"io"
	"log/slog"
	"os"
)

// DebugReportExtensionName is VK_EXT_DEBUG_REPORT_EXTENSION_NAME.
const DebugReportExtensionName = "VK_EXT_debug_report"

// KhronosValidationLayer is the validation layer shipped with the Vulkan SDK.
const KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"

// Config holds the fixed parameters of the bootstrap.
type Config struct {
	Width  int
	Height int
	Title  string

	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32

	// ValidationLayers are requested for both instance and device when
	// EnableValidation is set, which also requests DebugExtension and
	// attaches the debug messenger.
	ValidationLayers []string
	EnableValidation bool
	DebugExtension   string

	// Logger receives informational output; nil discards it.
	Logger *slog.Logger

	// Stderr receives validation messages and the fatal error, if any.
	Stderr io.Writer
}

// DefaultConfig returns the configuration used by cmd/hellovk.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "Vulkan",

		ApplicationName:    "Hello Triangle",
		ApplicationVersion: MakeVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      MakeVersion(1, 0, 0),
		APIVersion:         APIVersion10,

		ValidationLayers: []string{KhronosValidationLayer},
		EnableValidation: Diagnostics,
		DebugExtension:   DebugReportExtensionName,

		Logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
		Stderr: os.Stderr,
	}
}
