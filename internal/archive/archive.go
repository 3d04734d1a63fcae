// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/lambdapush/lambdapush/internal/log"
)

// Entry describes one archive member.
type Entry struct {
	Name string
	Size int64
}

// Build writes a deflate-compressed ZIP archive at outputPath containing the
// given files. Each member is stored under its path relative to baseDir
// (working directory when baseDir is empty); a path outside baseDir falls
// back to its bare filename. Missing or non-regular paths are skipped with a
// warning rather than aborting the archive. Any existing file at outputPath
// is overwritten.
//
// The output path is returned unchanged for chaining.
func Build(outputPath string, files []string, baseDir string) (string, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		baseDir = wd
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return "", err
	}

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil || !info.Mode().IsRegular() {
			log.Warnf("skipping %s: not a file or doesn't exist", file)
			continue
		}

		name := entryName(file, baseDir)
		if err := addFile(zw, file, name, info); err != nil {
			zw.Close()
			out.Close()
			return "", err
		}
		log.Debugf("entry added: name=%s, size=%d", name, info.Size())
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return "", err
	}
	return outputPath, out.Close()
}

// entryName computes the archive name for a source path: relative to baseDir
// when possible, bare filename otherwise.
func entryName(file, baseDir string) string {
	rel, err := filepath.Rel(baseDir, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		log.Warnf("%s is not relative to %s, using filename only", file, baseDir)
		return filepath.Base(file)
	}
	return filepath.ToSlash(rel)
}

// addFile copies one file into the archive under the given name.
func addFile(zw *zip.Writer, file, name string, info os.FileInfo) error {
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// List returns the name and uncompressed size of every member of the archive
// at path, in archive order. A path that does not exist yields an empty
// slice, not an error.
func List(path string) ([]Entry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return []Entry{}, nil
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	entries := make([]Entry, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, Entry{
			Name: f.Name,
			Size: int64(f.UncompressedSize64),
		})
	}
	return entries, nil
}
