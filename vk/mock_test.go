package vk

import (
	"bytes"
	"unsafe"

	"golang.org/x/exp/slices"
)

// recorder logs create/destroy calls in the order they happen.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) { r.calls = append(r.calls, call) }

func (r *recorder) count(call string) (n int) {
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

type mockPlatform struct {
	rec *recorder

	initErr    error
	windowErr  error
	extensions []string

	// closeAfter is the number of polls before the window should close.
	closeAfter int
	polls      int
}

func (p *mockPlatform) Init() error {
	p.rec.record("platform.init")
	return p.initErr
}

func (p *mockPlatform) CreateWindow(width, height int, title string) (Window, error) {
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.rec.record("window.create")
	return &mockWindow{p}, nil
}

func (p *mockPlatform) InstanceProcAddr() unsafe.Pointer { return nil }
func (p *mockPlatform) PollEvents()                      { p.polls++ }
func (p *mockPlatform) Terminate()                       { p.rec.record("platform.terminate") }

type mockWindow struct{ p *mockPlatform }

func (w *mockWindow) RequiredInstanceExtensions() []string { return w.p.extensions }
func (w *mockWindow) ShouldClose() bool                    { return w.p.polls >= w.p.closeAfter }
func (w *mockWindow) Destroy()                             { w.p.rec.record("window.destroy") }

type mockLoader struct {
	rec *recorder

	initErr    error
	extErr     error
	extensions []string
	layers     []string
	createErr  error
	devices    []*mockPhysicalDevice
	devicesErr error

	// noDebugProcs hides the debug entry points even when the
	// extension is enabled.
	noDebugProcs bool
	// noDestroyProc hides only the destroy entry point.
	noDestroyProc  bool
	messengerErr   error
	instanceInfo   *InstanceInfo
	instance       *mockInstance
	debugCallbacks []DebugCallback
}

func (l *mockLoader) Init(unsafe.Pointer) error {
	l.rec.record("loader.init")
	return l.initErr
}

func (l *mockLoader) InstanceExtensions() ([]string, error) { return l.extensions, l.extErr }
func (l *mockLoader) InstanceLayers() ([]string, error)     { return l.layers, nil }

func (l *mockLoader) CreateInstance(info *InstanceInfo) (Instance, error) {
	if l.createErr != nil {
		return nil, l.createErr
	}
	l.rec.record("instance.create")
	l.instanceInfo = info
	l.instance = &mockInstance{
		l:     l,
		debug: slices.Contains(info.Extensions, DebugReportExtensionName) && !l.noDebugProcs,
	}
	return l.instance, nil
}

type mockInstance struct {
	l     *mockLoader
	debug bool
}

func (inst *mockInstance) PhysicalDevices() ([]PhysicalDevice, error) {
	if inst.l.devicesErr != nil {
		return nil, inst.l.devicesErr
	}
	devs := make([]PhysicalDevice, len(inst.l.devices))
	for i, d := range inst.l.devices {
		devs[i] = d
	}
	return devs, nil
}

func (inst *mockInstance) DebugProcs() DebugProcs {
	if !inst.debug {
		return DebugProcs{}
	}
	procs := DebugProcs{
		Create: func(info *MessengerInfo) (Messenger, error) {
			if inst.l.messengerErr != nil {
				return nil, inst.l.messengerErr
			}
			inst.l.rec.record("messenger.create")
			inst.l.debugCallbacks = append(inst.l.debugCallbacks, info.Callback)
			return "messenger", nil
		},
		Destroy: func(m Messenger) {
			inst.l.rec.record("messenger.destroy")
		},
	}
	if inst.l.noDestroyProc {
		procs.Destroy = nil
	}
	return procs
}

func (inst *mockInstance) Destroy() { inst.l.rec.record("instance.destroy") }

type mockPhysicalDevice struct {
	rec *recorder

	props     DeviceProperties
	families  []QueueFamily
	createErr error

	deviceInfo *DeviceInfo
	created    int
	queues     []uint32
}

func (pd *mockPhysicalDevice) Properties() DeviceProperties { return pd.props }
func (pd *mockPhysicalDevice) QueueFamilies() []QueueFamily { return pd.families }

func (pd *mockPhysicalDevice) CreateDevice(info *DeviceInfo) (Device, error) {
	if pd.createErr != nil {
		return nil, pd.createErr
	}
	pd.rec.record("device.create")
	pd.deviceInfo = info
	pd.created++
	return &mockDevice{pd}, nil
}

type mockDevice struct{ pd *mockPhysicalDevice }

func (d *mockDevice) Queue(family, index uint32) Queue {
	d.pd.rec.record("device.queue")
	d.pd.queues = append(d.pd.queues, family)
	return [2]uint32{family, index}
}

func (d *mockDevice) Destroy() { d.pd.rec.record("device.destroy") }

func newMockDevice(rec *recorder, name string, dim2D, dim3D uint32, families ...QueueFamily) *mockPhysicalDevice {
	return &mockPhysicalDevice{
		rec: rec,
		props: DeviceProperties{
			Name:       name,
			Type:       DeviceTypeDiscreteGPU,
			APIVersion: MakeVersion(1, 3, 0),
			Limits: Limits{
				MaxImageDimension1D:   dim2D,
				MaxImageDimension2D:   dim2D,
				MaxImageDimension3D:   dim3D,
				MaxImageDimensionCube: dim2D,
			},
		},
		families: families,
	}
}

// newMock returns a platform and loader exposing one usable device.
func newMock() (*mockPlatform, *mockLoader, *recorder) {
	rec := &recorder{}
	p := &mockPlatform{
		rec:        rec,
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
		closeAfter: 3,
	}
	l := &mockLoader{
		rec:        rec,
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface", DebugReportExtensionName},
		layers:     []string{KhronosValidationLayer},
		devices: []*mockPhysicalDevice{
			newMockDevice(rec, "Mock GPU", 16384, 2048,
				QueueFamily{QueueCount: 1, Flags: QueueCompute},
				QueueFamily{QueueCount: 16, Flags: QueueGraphics | QueueCompute | QueueTransfer},
			),
		},
	}
	return p, l, rec
}

func testConfig(validation bool) (Config, *bytes.Buffer) {
	stderr := new(bytes.Buffer)
	cfg := DefaultConfig()
	cfg.EnableValidation = validation
	cfg.Logger = nil
	cfg.Stderr = stderr
	return cfg, stderr
}
