//go:build windows

package errcode

import (
	"strings"

	"golang.org/x/sys/windows"
)

type systemMessages struct{}

// System returns the FormatMessage-backed facility.
func System() SystemMessages {
	return systemMessages{}
}

func (systemMessages) Message(code int32) (string, bool) {
	buf := make([]uint16, 512)
	flags := uint32(windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS)
	n, err := windows.FormatMessage(flags, 0, uint32(code), 0, buf, nil)
	if err != nil || n == 0 {
		return "", false
	}
	msg := strings.TrimSpace(windows.UTF16ToString(buf[:n]))
	if msg == "" {
		return "", false
	}
	return msg, true
}
