package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramsForQuery(t *testing.T, query string) *Params {
	t.Helper()

	var got *Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetParams(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
	_, err := app.Test(req)
	require.NoError(t, err)
	require.NotNil(t, got)
	return got
}

func TestGetParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, DefaultLimit, 0},
		{"explicit page and limit", "?page=3&limit=10", 3, 10, 20},
		{"page below one clamps", "?page=0&limit=10", 1, 10, 0},
		{"negative page clamps", "?page=-5", 1, DefaultLimit, 0},
		{"limit below one falls back", "?limit=0", 1, DefaultLimit, 0},
		{"limit above max clamps", "?limit=500", 1, MaxLimit, 0},
		{"non-numeric values fall back", "?page=abc&limit=xyz", 1, DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsForQuery(t, tt.query)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(&Params{Page: 2, Limit: 10}, 35)
	assert.Equal(t, 4, meta.TotalPages)
	assert.Equal(t, int64(35), meta.Total)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	first := GetMeta(&Params{Page: 1, Limit: 10}, 5)
	assert.Equal(t, 1, first.TotalPages)
	assert.False(t, first.HasNext)
	assert.False(t, first.HasPrev)

	empty := GetMeta(&Params{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
}
