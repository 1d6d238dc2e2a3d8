//go:build release

package vk

// Diagnostics enables validation layers and the debug messenger.
const Diagnostics = false
