package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"phonestore-api/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveUpload stores an uploaded image under the configured upload directory
// and returns the relative path of the stored file.
func saveUpload(c *fiber.Ctx, file *multipart.FileHeader, subdir string) (string, error) {
	maxSize := int64(config.AppConfig.Upload.MaxSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		return "", fmt.Errorf("file exceeds the maximum size of %dMB", config.AppConfig.Upload.MaxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("file type %s is not allowed", ext)
	}

	dir := filepath.Join(config.AppConfig.Upload.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + ext
	path := filepath.Join(dir, filename)
	if err := c.SaveFile(file, path); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	return path, nil
}
