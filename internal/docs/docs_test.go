// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayvoy/kiosk-tui/internal/logging"
)

func TestProfilesOrderStable(t *testing.T) {
	got := Profiles()
	want := []Profile{ProfileDisabled, ProfileSenior, ProfileStudent}
	if len(got) != len(want) {
		t.Fatalf("Profiles() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Profiles()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDocumentsForOrdered(t *testing.T) {
	labels := DocumentsFor(ProfileSenior)
	want := []string{
		"Acta de nacimiento", "CURP", "INE",
		"Tarjeta INAPAM", "Comprobante de domicilio",
	}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v", labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestDocumentsForReturnsCopy(t *testing.T) {
	labels := DocumentsFor(ProfileStudent)
	labels[0] = "mutated"
	if DocumentsFor(ProfileStudent)[0] != "Acta de nacimiento" {
		t.Error("caller mutation leaked into the checklist")
	}
}

func TestDocumentsForUnknownProfile(t *testing.T) {
	if labels := DocumentsFor(Profile("turista")); labels != nil {
		t.Errorf("unknown profile labels = %v, want nil", labels)
	}
}

func TestReactivationDocs(t *testing.T) {
	for _, p := range []Profile{ProfileDisabled, ProfileStudent} {
		got := ReactivationDocs(p)
		if len(got) != 1 || got[0] != "Tarjeta YOVOY" {
			t.Errorf("ReactivationDocs(%s) = %v", p, got)
		}
	}
	if got := ReactivationDocs(ProfileSenior); got != nil {
		t.Errorf("ReactivationDocs(senior) = %v, want nil", got)
	}
}

func TestUploadCopiesWithLabelPrefix(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "ine_frontal.pdf")
	if err := os.WriteFile(src, []byte("pdf bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	intake := filepath.Join(t.TempDir(), "TRAMITES")
	u := NewUploader(intake, logging.Nop())

	dest, err := u.Upload("INE", src)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if filepath.Base(dest) != "INE_ine_frontal.pdf" {
		t.Errorf("dest name = %s", filepath.Base(dest))
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading dest: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("dest content = %q", data)
	}
}

func TestUploadCreatesIntakeDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "curp.png")
	if err := os.WriteFile(src, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	intake := filepath.Join(t.TempDir(), "deep", "TRAMITES")
	u := NewUploader(intake, logging.Nop())

	if _, err := u.Upload("CURP", src); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, err := os.Stat(intake); err != nil {
		t.Errorf("intake dir not created: %v", err)
	}
}

func TestUploadLabelWithSpaces(t *testing.T) {
	src := filepath.Join(t.TempDir(), "foto.jpg")
	if err := os.WriteFile(src, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	u := NewUploader(t.TempDir(), logging.Nop())
	dest, err := u.Upload("Foto Tamaño Infantil (Color)", src)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if filepath.Base(dest) != "Foto Tamaño Infantil (Color)_foto.jpg" {
		t.Errorf("dest name = %s", filepath.Base(dest))
	}
}

func TestUploadRejectsMissingSource(t *testing.T) {
	u := NewUploader(t.TempDir(), logging.Nop())
	if _, err := u.Upload("INE", filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Error("Upload of missing source should fail")
	}
}

func TestUploadRejectsEmptyLabel(t *testing.T) {
	u := NewUploader(t.TempDir(), logging.Nop())
	if _, err := u.Upload("   ", "whatever.pdf"); err == nil {
		t.Error("Upload with blank label should fail")
	}
}

func TestUploadSanitizesSeparators(t *testing.T) {
	src := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(src, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	intake := t.TempDir()
	u := NewUploader(intake, logging.Nop())
	dest, err := u.Upload("../escape", src)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if filepath.Dir(dest) != intake {
		t.Errorf("dest escaped intake dir: %s", dest)
	}
}
