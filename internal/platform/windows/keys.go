package windows

import (
	"fmt"
	"unicode/utf16"

	"github.com/mj1618/window-walker/internal/platform"
)

const (
	keyeventfKeyUp   = 0x0002
	keyeventfUnicode = 0x0004

	vkReturn = 0x0D
	vkTab    = 0x09
	vkEscape = 0x1B
)

// keyStroke is one keyboard event for SendInput.
type keyStroke struct {
	vk    uint16
	scan  uint16
	flags uint32
}

// virtualKey maps a platform key name to its virtual-key code.
func virtualKey(key string) (uint16, error) {
	switch key {
	case platform.KeyEnter:
		return vkReturn, nil
	case platform.KeyTab:
		return vkTab, nil
	case platform.KeyEscape:
		return vkEscape, nil
	default:
		return 0, fmt.Errorf("unsupported key: %q", key)
	}
}

// pressStrokes returns the down/up pair for a virtual key.
func pressStrokes(vk uint16) []keyStroke {
	return []keyStroke{
		{vk: vk},
		{vk: vk, flags: keyeventfKeyUp},
	}
}

// unicodeStrokes encodes text as KEYEVENTF_UNICODE events, one down/up pair
// per UTF-16 code unit so characters outside the BMP arrive as surrogate
// pairs. Newlines become Enter presses and carriage returns are dropped.
func unicodeStrokes(text string) [][]keyStroke {
	var out [][]keyStroke
	for _, r := range text {
		switch r {
		case '\r':
			continue
		case '\n':
			out = append(out, pressStrokes(vkReturn))
			continue
		case '\t':
			out = append(out, pressStrokes(vkTab))
			continue
		}
		var strokes []keyStroke
		for _, unit := range utf16.Encode([]rune{r}) {
			strokes = append(strokes,
				keyStroke{scan: unit, flags: keyeventfUnicode},
				keyStroke{scan: unit, flags: keyeventfUnicode | keyeventfKeyUp},
			)
		}
		out = append(out, strokes)
	}
	return out
}
