package libs

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ImageStore keeps uploaded product images on disk under Dir and maps
// stored names to their public /uploads/ URLs.
type ImageStore struct {
	Dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{Dir: dir}
}

// IsAllowed reports whether the declared filename has one of the accepted
// image extensions. A name without a dot is never allowed.
func (s *ImageStore) IsAllowed(filename string) bool {
	ext := filepath.Ext(filename)
	if ext == "" {
		return false
	}
	return allowedImageExtensions[strings.ToLower(ext)]
}

// SanitizeFilename strips any path components and characters that are not
// safe in a stored name.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeFilenameChars.ReplaceAllString(name, "")
}

// Save writes the uploaded file under a collision-resistant stored name of
// the form <uuid>_<sanitized-original-name> and returns that name. Callers
// must have checked IsAllowed before uploading.
func (s *ImageStore) Save(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if !s.IsAllowed(fileHeader.Filename) {
		return "", fmt.Errorf("image extension not allowed: %s", fileHeader.Filename)
	}

	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return "", err
	}

	stored := fmt.Sprintf("%s_%s", uuid.New().String(), SanitizeFilename(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(s.Dir, stored)); err != nil {
		return "", err
	}
	return stored, nil
}

// Remove deletes a stored file best-effort. A missing file or filesystem
// error is logged and swallowed so it never blocks the record mutation the
// caller is performing.
func (s *ImageStore) Remove(stored string) {
	if stored == "" {
		return
	}
	path := filepath.Join(s.Dir, stored)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove image %s: %v", path, err)
	}
}

// URL maps a stored name to its retrieval path. An empty name yields an
// empty URL so the view can render a placeholder.
func (s *ImageStore) URL(stored string) string {
	if stored == "" {
		return ""
	}
	return "/uploads/" + stored
}
