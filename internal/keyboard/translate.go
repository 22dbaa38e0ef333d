package keyboard

// Translate maps a Windows virtual-key code to the keybd_event code of the
// running platform. It reports false for codes the platform has no key for.
func Translate(vk int) (int, bool) {
	if vk <= 0 || vk > maxVirtualKey {
		return 0, false
	}
	return translate(vk)
}

// Virtual-key codes are a single byte; 0xFF is reserved.
const maxVirtualKey = 0xFE
