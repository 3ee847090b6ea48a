package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// photoExtensions are the upload types the backend accepts.
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidatePhotoPath checks a photo upload path before any request is built.
// An empty or missing file is a client-side error and must never reach the
// network.
func ValidatePhotoPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("choose a photo file first")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("photo file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a photo", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !photoExtensions[ext] {
		return fmt.Errorf("unsupported photo type %q: use .jpg, .jpeg, .png, or .webp", ext)
	}
	return nil
}
