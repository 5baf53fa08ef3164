//go:build unix

package errcode

import "golang.org/x/sys/unix"

type systemMessages struct{}

// System returns the errno-backed facility. Only codes the platform names
// have a mapping; HRESULT-style negative values never do.
func System() SystemMessages {
	return systemMessages{}
}

func (systemMessages) Message(code int32) (string, bool) {
	if code <= 0 {
		return "", false
	}
	errno := unix.Errno(code)
	if unix.ErrnoName(errno) == "" {
		return "", false
	}
	return errno.Error(), true
}
