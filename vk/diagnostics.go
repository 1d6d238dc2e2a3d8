//go:build !release

package vk

// Diagnostics enables validation layers and the debug messenger.
// Build with -tags release to turn it off.
const Diagnostics = true
