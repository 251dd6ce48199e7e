package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"phonestore-api/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiberConfigBodyLimit(t *testing.T) {
	cfg := &config.Config{Upload: config.UploadConfig{MaxSizeMB: 8}}

	fc := FiberConfig(cfg)
	assert.Equal(t, 8*1024*1024, fc.BodyLimit)
	assert.NotNil(t, fc.ErrorHandler)
}

func TestBodyLimitAdmitsConfiguredUploadSize(t *testing.T) {
	cfg := &config.Config{Upload: config.UploadConfig{MaxSizeMB: 8}}

	app := fiber.New(FiberConfig(cfg))
	app.Post("/upload", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// 5MB sits above Fiber's default 4MB limit but below the configured one.
	body := bytes.Repeat([]byte("a"), 5*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBodyLimitRejectsOversizedBody(t *testing.T) {
	cfg := &config.Config{Upload: config.UploadConfig{MaxSizeMB: 1}}

	app := fiber.New(FiberConfig(cfg))
	app.Post("/upload", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body := bytes.Repeat([]byte("a"), 2*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}
