package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedApp(locals map[string]string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			for key, val := range locals {
				c.Locals(key, val)
			}
			return c.Next()
		},
		AdminOnly(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func guardStatus(t *testing.T, locals map[string]string) int {
	t.Helper()
	resp, err := guardedApp(locals).Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAdminOnly(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, guardStatus(t, map[string]string{
		LocAdminID:   "sports",
		LocAdminRole: "core",
	}))
	assert.Equal(t, fiber.StatusForbidden, guardStatus(t, map[string]string{
		LocUserID: "5f1c9f6e-9a7a-4c2e-9d57-2f9c1b3a8d10",
	}))
	assert.Equal(t, fiber.StatusForbidden, guardStatus(t, nil))
}

func TestIdentityPredicates(t *testing.T) {
	app := fiber.New()
	app.Get("/who", func(c *fiber.Ctx) error {
		c.Locals(LocAdminID, "culturals")
		assert.True(t, IsAdmin(c))
		assert.False(t, IsUser(c))

		c.Locals(LocAdminID, "")
		c.Locals(LocUserID, "5f1c9f6e-9a7a-4c2e-9d57-2f9c1b3a8d10")
		assert.False(t, IsAdmin(c))
		assert.True(t, IsUser(c))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/who", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
