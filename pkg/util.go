package pkg

import (
	"os"
	"syscall"
)

// PathExists returns whether the given file or directory exists.
// A path of the other kind (a file when isDir, or a dir when not) is an error.
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	switch {
	case isDir && !stat.IsDir():
		return false, &os.PathError{Op: "stat", Path: path, Err: syscall.ENOTDIR}
	case !isDir && stat.IsDir():
		return false, &os.PathError{Op: "stat", Path: path, Err: syscall.EISDIR}
	}

	return true, nil
}
