//go:build !unix

package git

import "os"

// deviceOf has no portable device id here, so every path reports the same device
func deviceOf(path string) (uint64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	return 0, nil
}
