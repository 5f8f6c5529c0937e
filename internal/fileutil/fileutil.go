// Package fileutil holds the filesystem primitives used to relocate media:
// copies that keep permissions and timestamps, integrity-checked copies, moves
// that survive crossing filesystems, and collision-free destination names.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// rename is swapped in tests to simulate cross-device moves.
var rename = os.Rename

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// CopyFilePreserve copies src to a new file at dst, keeping the source
// permission bits and modification time. It fails with fs.ErrExist rather
// than overwrite dst.
func CopyFilePreserve(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if err := copyExclusive(src, dst, info, nil); err != nil {
		return err
	}
	return preserveMetadata(dst, info)
}

// CopyFileVerified copies src to a new file at dst with SHA256 + size
// integrity verification, keeping permissions and modification time.
// Removes dst on mismatch.
func CopyFileVerified(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	var written int64
	err = copyExclusive(src, dst, info, func(in io.Reader, out io.Writer) error {
		n, copyErr := io.Copy(io.MultiWriter(out, dstHasher), io.TeeReader(in, srcHasher))
		written = n
		return copyErr
	})
	if err != nil {
		return err
	}

	if written != info.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return errors.New("copy hash mismatch: file corrupted during copy")
	}
	return preserveMetadata(dst, info)
}

// MoveFile renames src to dst, falling back to a verified copy followed by
// removal of src when the two paths live on different filesystems. An
// existing dst is never replaced.
func MoveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("move %s: %w", dst, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat destination: %w", err)
	}

	err := rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EXDEV) {
		return err
	}
	if err := CopyFileVerified(src, dst); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// UniqueFilePath returns path when nothing exists there, otherwise the first
// free "name (n).ext" sibling.
func UniqueFilePath(path string) (string, error) {
	return UniqueFilePathExcluding(path, nil)
}

// UniqueFilePathExcluding is UniqueFilePath that also treats every path in
// reserved as taken. Dry runs use it to plan names that were never written.
func UniqueFilePathExcluding(path string, reserved map[string]struct{}) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return uniquePath(path, reserved, func(n int) string {
		return fmt.Sprintf("%s (%d)%s", stem, n, ext)
	})
}

// UniqueDirPath is UniqueFilePath without extension splitting, producing
// "name (n)" candidates.
func UniqueDirPath(path string) (string, error) {
	return uniquePath(path, nil, func(n int) string {
		return fmt.Sprintf("%s (%d)", path, n)
	})
}

const maxUniqueAttempts = 10000

func uniquePath(path string, reserved map[string]struct{}, candidate func(int) string) (string, error) {
	next := path
	for n := 1; n <= maxUniqueAttempts; n++ {
		if _, taken := reserved[next]; taken {
			next = candidate(n)
			continue
		}
		_, err := os.Lstat(next)
		if errors.Is(err, fs.ErrNotExist) {
			return next, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", next, err)
		}
		next = candidate(n)
	}
	return "", fmt.Errorf("no free name for %s after %d attempts", path, maxUniqueAttempts)
}

func copyExclusive(src, dst string, info os.FileInfo, copyFn func(io.Reader, io.Writer) error) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if copyFn == nil {
		copyFn = func(r io.Reader, w io.Writer) error {
			_, err := io.Copy(w, r)
			return err
		}
	}
	if err := copyFn(in, out); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

func preserveMetadata(dst string, info os.FileInfo) error {
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("preserve mode: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("preserve mtime: %w", err)
	}
	return nil
}
