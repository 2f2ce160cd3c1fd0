package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func resolveOn(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/regs", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	p := resolveOn(t, "/regs?page=3&limit=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)

	defaults := resolveOn(t, "/regs")
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 20, defaults.PerPage)
	assert.Equal(t, 0, defaults.Offset)

	capped := resolveOn(t, "/regs?per_page=500")
	assert.Equal(t, 100, capped.PerPage)

	nonsense := resolveOn(t, "/regs?page=-2&limit=abc")
	assert.Equal(t, 1, nonsense.Page)
	assert.Equal(t, 20, nonsense.PerPage)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(fiber.StatusBadRequest))
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(fiber.StatusUnauthorized))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(fiber.StatusInternalServerError))
}
