//go:build unix

package git

import "golang.org/x/sys/unix"

// deviceOf returns the device id of path, used to stop the walk at mount points (Unix implementation)
func deviceOf(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Dev), nil
}
