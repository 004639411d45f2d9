// Package backup copies a snapshot folder to a timestamped sibling before a
// live run mutates anything near it.
package backup

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Create copies folderPath recursively to <name>_backup_<YYYYMMDD_HHMMSS>
// next to it and returns the backup path. Any error aborts the backup and
// is returned; callers must not proceed with a live run on failure.
func Create(folderPath string) (string, error) {
	src := filepath.Clean(folderPath)
	name := fmt.Sprintf("%s_backup_%s", filepath.Base(src), time.Now().Format("20060102_150405"))
	dst := filepath.Join(filepath.Dir(src), name)

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(path, target)
	})
	if err != nil {
		return "", fmt.Errorf("create backup %s: %w", dst, err)
	}
	return dst, nil
}

// copyFile copies contents, permissions, and modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}
