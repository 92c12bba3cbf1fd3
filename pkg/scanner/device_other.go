//go:build !unix

package scanner

import "os"

// deviceOf reports no device ID on platforms without one; device
// boundaries are not detected there.
func deviceOf(info os.FileInfo) (uint64, bool) {
	return 0, false
}
