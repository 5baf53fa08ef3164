//go:build !windows && !unix

package errcode

type systemMessages struct{}

// System returns a facility with no mappings.
func System() SystemMessages {
	return systemMessages{}
}

func (systemMessages) Message(int32) (string, bool) {
	return "", false
}
