package route

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmw "mahotsav_backend/internals/middlewares/auth"
)

func newAdminApp(locals map[string]string) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	mountAdminRoutes(api, nil, func(c *fiber.Ctx) error {
		for key, val := range locals {
			c.Locals(key, val)
		}
		return c.Next()
	})
	return app
}

// A regular attendee token is enough to call the profile route; the
// handler answers 404 for a non-staff identity instead of the gate
// rejecting the request with 403.
func TestProfileAcceptsAttendeeToken(t *testing.T) {
	app := newAdminApp(map[string]string{
		authmw.LocUserID:   "5f1c9f6e-9a7a-4c2e-9d57-2f9c1b3a8d10",
		authmw.LocUserMHID: "MH2642",
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/admin/profile", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
