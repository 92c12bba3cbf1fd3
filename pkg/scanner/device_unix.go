//go:build unix

package scanner

import (
	"os"
	"syscall"
)

// deviceOf returns the device ID backing info when the platform exposes
// one.
func deviceOf(info os.FileInfo) (uint64, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(st.Dev), true
}
