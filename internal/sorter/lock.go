package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created in the output root while a run holds it and
// removed when the run ends.
const LockFileName = ".aspectsort.lock"

// ErrLocked is returned when another run is sorting into the same output root.
var ErrLocked = errors.New("output directory is locked by another run")

func acquireLock(outputRoot string) (*flock.Flock, error) {
	path := filepath.Join(outputRoot, LockFileName)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}
	return lock, nil
}

// releaseLock deletes the lock file while still holding it, then unlocks, so
// a sorted folder is left without the marker.
func releaseLock(lock *flock.Flock) error {
	removeErr := os.Remove(lock.Path())
	if errors.Is(removeErr, fs.ErrNotExist) {
		removeErr = nil
	}
	if err := lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", lock.Path(), err)
	}
	if removeErr != nil {
		return fmt.Errorf("remove lock %s: %w", lock.Path(), removeErr)
	}
	return nil
}
