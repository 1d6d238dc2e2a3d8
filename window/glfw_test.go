package window

import (
	"reflect"
	"testing"
)

func TestTrimNUL(t *testing.T) {
	names := []string{"VK_KHR_surface\x00", "VK_KHR_xcb_surface", ""}
	want := []string{"VK_KHR_surface", "VK_KHR_xcb_surface", ""}
	if have := trimNUL(names); !reflect.DeepEqual(want, have) {
		t.Fatalf("have %q, want %q", have, want)
	}
	if have := trimNUL(nil); len(have) != 0 {
		t.Fatalf("have %q, want empty", have)
	}
}
