//go:build windows

package windows

import (
	"fmt"
	"time"
	"unsafe"
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors the Win32 INPUT struct; padding covers the larger
// MOUSEINPUT member of the union.
type input struct {
	inputType uint32
	ki        keyboardInput
	padding   uint64
}

func sendStrokes(strokes []keyStroke) error {
	if len(strokes) == 0 {
		return nil
	}
	inputs := make([]input, len(strokes))
	for i, s := range strokes {
		inputs[i] = input{
			inputType: inputKeyboard,
			ki:        keyboardInput{wVk: s.vk, wScan: s.scan, dwFlags: s.flags},
		}
	}
	n, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if int(n) != len(inputs) {
		return fmt.Errorf("SendInput sent %d of %d events: %v", n, len(inputs), err)
	}
	return nil
}

// TypeText types text into the focused window. With delayMs > 0 characters
// are sent one at a time.
func (p *windowsProvider) TypeText(text string, delayMs int) error {
	chars := unicodeStrokes(text)
	if delayMs <= 0 {
		var all []keyStroke
		for _, c := range chars {
			all = append(all, c...)
		}
		return sendStrokes(all)
	}
	for _, c := range chars {
		if err := sendStrokes(c); err != nil {
			return err
		}
		time.Sleep(time.Duration(delayMs) * time.Millisecond)
	}
	return nil
}

func (p *windowsProvider) KeyPress(key string) error {
	vk, err := virtualKey(key)
	if err != nil {
		return err
	}
	return sendStrokes(pressStrokes(vk))
}
