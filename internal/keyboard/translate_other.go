//go:build !windows && !linux

package keyboard

import "github.com/micmonay/keybd_event"

var virtualKeys = map[int]int{
	0x09: keybd_event.VK_TAB,
	0x0D: keybd_event.VK_ENTER,
	0x20: keybd_event.VK_SPACE,
	0x25: keybd_event.VK_LEFT,
	0x26: keybd_event.VK_UP,
	0x27: keybd_event.VK_RIGHT,
	0x28: keybd_event.VK_DOWN,

	0x30: keybd_event.VK_0,
	0x31: keybd_event.VK_1,
	0x32: keybd_event.VK_2,
	0x33: keybd_event.VK_3,
	0x34: keybd_event.VK_4,
	0x35: keybd_event.VK_5,
	0x36: keybd_event.VK_6,
	0x37: keybd_event.VK_7,
	0x38: keybd_event.VK_8,
	0x39: keybd_event.VK_9,

	0x41: keybd_event.VK_A,
	0x42: keybd_event.VK_B,
	0x43: keybd_event.VK_C,
	0x44: keybd_event.VK_D,
	0x45: keybd_event.VK_E,
	0x46: keybd_event.VK_F,
	0x47: keybd_event.VK_G,
	0x48: keybd_event.VK_H,
	0x49: keybd_event.VK_I,
	0x4A: keybd_event.VK_J,
	0x4B: keybd_event.VK_K,
	0x4C: keybd_event.VK_L,
	0x4D: keybd_event.VK_M,
	0x4E: keybd_event.VK_N,
	0x4F: keybd_event.VK_O,
	0x50: keybd_event.VK_P,
	0x51: keybd_event.VK_Q,
	0x52: keybd_event.VK_R,
	0x53: keybd_event.VK_S,
	0x54: keybd_event.VK_T,
	0x55: keybd_event.VK_U,
	0x56: keybd_event.VK_V,
	0x57: keybd_event.VK_W,
	0x58: keybd_event.VK_X,
	0x59: keybd_event.VK_Y,
	0x5A: keybd_event.VK_Z,
}

func translate(vk int) (int, bool) {
	code, ok := virtualKeys[vk]
	return code, ok
}
