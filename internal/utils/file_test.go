package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePhotoPathEmpty(t *testing.T) {
	err := ValidatePhotoPath("")
	if err == nil {
		t.Fatalf("empty path must be rejected before any request is built")
	}
	if err.Error() != "choose a photo file first" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if err := ValidatePhotoPath("   "); err == nil {
		t.Errorf("whitespace path must be rejected")
	}
}

func TestValidatePhotoPathMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.jpg")
	if err := ValidatePhotoPath(missing); err == nil {
		t.Errorf("missing file must be rejected")
	}
}

func TestValidatePhotoPathDirectory(t *testing.T) {
	if err := ValidatePhotoPath(t.TempDir()); err == nil {
		t.Errorf("directory must be rejected")
	}
}

func TestValidatePhotoPathExtensions(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		return p
	}

	for _, name := range []string{"a.jpg", "b.jpeg", "c.png", "d.webp", "e.JPG"} {
		if err := ValidatePhotoPath(write(name)); err != nil {
			t.Errorf("%s should be accepted: %v", name, err)
		}
	}
	for _, name := range []string{"f.gif", "g.pdf", "h"} {
		if err := ValidatePhotoPath(write(name)); err == nil {
			t.Errorf("%s should be rejected", name)
		}
	}
}
