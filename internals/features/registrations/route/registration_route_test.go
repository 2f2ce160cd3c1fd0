package route

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmw "mahotsav_backend/internals/middlewares/auth"
)

// identityStub stands in for the bearer middleware: it drops the given
// values into Locals the way token resolution would, without a database.
func identityStub(locals map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for key, val := range locals {
			c.Locals(key, val)
		}
		return c.Next()
	}
}

func newRegistrationApp(locals map[string]string) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	mountRegistrationRoutes(api, nil, identityStub(locals))
	return app
}

func requestStatus(t *testing.T, app *fiber.App, method, target string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

// The attendee routes must never sit behind the admin gate. Without an
// identity the handlers answer 401 themselves; a 403 here would mean the
// dashboard gate leaked onto the whole group.
func TestAttendeeRoutesAreNotAdminGated(t *testing.T) {
	app := newRegistrationApp(nil)

	cases := []struct {
		method string
		target string
	}{
		{fiber.MethodPost, "/api/registrations/"},
		{fiber.MethodGet, "/api/registrations/"},
		{fiber.MethodGet, "/api/registrations/some-id"},
		{fiber.MethodPut, "/api/registrations/some-id/cancel"},
		{fiber.MethodDelete, "/api/registrations/some-id"},
	}
	for _, tc := range cases {
		status := requestStatus(t, app, tc.method, tc.target)
		assert.Equal(t, fiber.StatusUnauthorized, status, "%s %s", tc.method, tc.target)
	}
}

func TestDashboardRoutesRequireAdminIdentity(t *testing.T) {
	attendee := newRegistrationApp(map[string]string{
		authmw.LocUserID:   "5f1c9f6e-9a7a-4c2e-9d57-2f9c1b3a8d10",
		authmw.LocUserMHID: "MH2642",
	})

	assert.Equal(t, fiber.StatusForbidden,
		requestStatus(t, attendee, fiber.MethodGet, "/api/registrations/admin"))
	assert.Equal(t, fiber.StatusForbidden,
		requestStatus(t, attendee, fiber.MethodGet, "/api/registrations/event/5f1c9f6e-9a7a-4c2e-9d57-2f9c1b3a8d10"))

	anonymous := newRegistrationApp(nil)
	assert.Equal(t, fiber.StatusForbidden,
		requestStatus(t, anonymous, fiber.MethodGet, "/api/registrations/admin"))
}

// "/admin" is registered before ":id", so it must resolve to the gated
// dashboard listing instead of the attendee detail handler.
func TestStaticDashboardPathWinsOverID(t *testing.T) {
	app := newRegistrationApp(nil)

	// the detail handler would answer 401 for an anonymous caller; 403
	// proves the request reached the gated dashboard route
	assert.Equal(t, fiber.StatusForbidden,
		requestStatus(t, app, fiber.MethodGet, "/api/registrations/admin"))
}
