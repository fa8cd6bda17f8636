//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/Cropper/config"
	"golang.org/x/sys/unix"
)

var lockFile *os.File

// acquireLock takes an exclusive file lock in the data directory.
func acquireLock() (bool, error) {
	dir, err := config.GetPath()
	if err != nil {
		dir = os.TempDir()
	}
	file, err := os.OpenFile(filepath.Join(dir, config.ServiceName+".lock"), os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	err = unix.FcntlFlock(file.Fd(), unix.F_SETLK, &unix.Flock_t{Type: unix.F_WRLCK})
	if err != nil {
		file.Close()
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EACCES) {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	lockFile = file
	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if lockFile == nil {
		return
	}
	_ = unix.FcntlFlock(lockFile.Fd(), unix.F_SETLK, &unix.Flock_t{Type: unix.F_UNLCK})
	lockFile.Close()
	os.Remove(lockFile.Name())
}
