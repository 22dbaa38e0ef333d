package keyboard

// keybd_event sends codes above virtualKeyOffset as virtual keys rather than
// scan codes (its own VK_SHIFT is 0x10 + 0xFFF).
const virtualKeyOffset = 0xFFF

func translate(vk int) (int, bool) {
	return vk + virtualKeyOffset, true
}
