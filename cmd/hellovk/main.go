// Command hellovk opens a window, brings up a Vulkan instance and logical
// device on the best GPU, and waits for the window to be closed.
//
// Build with -tags release to turn validation layers off.
package main

import (
	"runtime"

	"github.com/xlab/closer"

	"dasa.cc/hellovk/vk"
	"dasa.cc/hellovk/vk/native"
	"dasa.cc/hellovk/window"
)

func init() {
	// glfw and the Vulkan loader must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := vk.DefaultConfig()
	app := vk.New(cfg, window.New(cfg.Logger), native.New())

	// on interrupt, stop the event loop and wait for teardown.
	closer.Bind(func() {
		app.RequestClose()
		<-app.Done()
	})
	closer.Exit(app.Main())
}
