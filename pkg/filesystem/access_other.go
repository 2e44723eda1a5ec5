//go:build !unix

package filesystem

import "os"

func accessWritable(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o222 != 0
}
