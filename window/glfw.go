// Package window implements vk.Platform with glfw. Windows are created
// without a client API so that Vulkan can be used on them.
//
// glfw must be driven from the main thread; callers lock it with
// runtime.LockOSThread before Init.
package window

import (
	"io"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"dasa.cc/hellovk/vk"
)

var (
	pollEvents      = glfw.PollEvents
	terminate       = glfw.Terminate
	vulkanSupported = glfw.VulkanSupported
)

var (
	_ vk.Platform = (*Platform)(nil)
	_ vk.Window   = (*Window)(nil)
)

// Platform implements vk.Platform.
type Platform struct {
	logger *slog.Logger
}

// New returns a Platform logging to logger, which may be nil.
func New(logger *slog.Logger) *Platform {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Platform{logger: logger}
}

// Init initializes glfw and checks that a Vulkan loader was found.
// On error glfw is left terminated.
func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw.Init")
	}
	if !vulkanSupported() {
		terminate()
		return errors.New("glfw: Vulkan loader not found")
	}
	return nil
}

func (p *Platform) CreateWindow(width, height int, title string) (vk.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "glfw.CreateWindow")
	}
	p.logger.Info("window created", "width", width, "height", height, "title", title)
	return &Window{win: win}, nil
}

func (p *Platform) InstanceProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (p *Platform) PollEvents() { pollEvents() }
func (p *Platform) Terminate()  { terminate() }

// Window implements vk.Window.
type Window struct {
	win *glfw.Window
}

// RequiredInstanceExtensions lists the instance extensions needed to
// create surfaces for the window.
func (w *Window) RequiredInstanceExtensions() []string {
	return trimNUL(w.win.GetRequiredInstanceExtensions())
}

// trimNUL strips the C string terminators some glfw bindings leave in place.
func trimNUL(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.TrimRight(name, "\x00")
	}
	return out
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }
func (w *Window) Destroy()          { w.win.Destroy() }
