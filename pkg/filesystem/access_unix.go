//go:build unix

package filesystem

import "golang.org/x/sys/unix"

// accessWritable asks the kernel through access(2) with W_OK
func accessWritable(name string) bool {
	return unix.Access(name, unix.W_OK) == nil
}
