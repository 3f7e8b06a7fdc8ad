// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayvoy/kiosk-tui/internal/logging"
)

// =============================================================================
// UPLOADER
// =============================================================================

// Uploader copies rider-supplied files into the intake directory.
type Uploader struct {
	dir string
	log logging.Logger
}

// NewUploader builds an uploader targeting dir. The directory is
// created lazily on first upload.
func NewUploader(dir string, log logging.Logger) *Uploader {
	if log == nil {
		log = logging.Nop()
	}
	return &Uploader{dir: dir, log: log}
}

// Dir returns the intake directory.
func (u *Uploader) Dir() string {
	return u.dir
}

// Upload copies the file at srcPath into the intake directory as
// label_originalname and returns the destination path. The label keeps
// its spaces; only path separators are stripped so a label can never
// escape the intake directory.
func (u *Uploader) Upload(label, srcPath string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fmt.Errorf("empty document label")
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("opening document: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(u.dir, 0o700); err != nil {
		return "", fmt.Errorf("creating intake directory: %w", err)
	}

	name := sanitizeComponent(label) + "_" + filepath.Base(srcPath)
	dest := filepath.Join(u.dir, name)

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("copying document: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	u.log.Info("document received", "label", label, "file", name)
	return dest, nil
}

// sanitizeComponent makes a label safe as a filename component.
func sanitizeComponent(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '-'
		}
		return r
	}, s)
}
