package dto

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeVia(t *testing.T, contentType string, body *bytes.Buffer) (*EventPayload, error) {
	t.Helper()
	app := fiber.New()
	var payload *EventPayload
	var decodeErr error
	app.Post("/events", func(c *fiber.Ctx) error {
		payload, decodeErr = DecodeEventPayload(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/events", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return payload, decodeErr
}

func TestDecodeEventPayloadMultipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("eventCategory", "sports"))
	require.NoError(t, w.WriteField("eventName", "Inter College Quiz"))
	require.NoError(t, w.WriteField("participantCategory", "men & women"))
	require.NoError(t, w.WriteField("rules", "Teams of two."))
	require.NoError(t, w.WriteField("prizes", `{"men":[{"name":"1st","amount":"5000"}]}`))
	require.NoError(t, w.WriteField("contactPersons", `[{"name":"Asha","phone":"9876543210"},{"name":"","phone":""}]`))
	require.NoError(t, w.WriteField("leadAuth", `{"id":"quiz_lead","password":"secret1"}`))
	require.NoError(t, w.Close())

	p, err := decodeVia(t, w.FormDataContentType(), &buf)
	require.NoError(t, err)

	assert.Equal(t, "sports", p.EventCategory)
	assert.Equal(t, "Inter College Quiz", p.EventName)
	require.NotNil(t, p.LeadAuth)
	assert.Equal(t, "quiz_lead", p.LeadAuth.ID)
	require.Len(t, p.ContactPersons, 1, "empty contact rows are dropped")
	assert.Equal(t, "Asha", p.ContactPersons[0].Name)
	require.Contains(t, p.Prizes, "men")
	assert.Equal(t, "5000", p.Prizes["men"][0].Amount)
	assert.NoError(t, p.Validate())
}

func TestDecodeEventPayloadMultipartBadJSONField(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("eventName", "Chess"))
	require.NoError(t, w.WriteField("prizes", `not-json`))
	require.NoError(t, w.Close())

	_, err := decodeVia(t, w.FormDataContentType(), &buf)
	assert.Error(t, err)
}

func TestDecodeEventPayloadJSON(t *testing.T) {
	body := bytes.NewBufferString(`{
		"eventCategory": "cultural",
		"eventName": "Solo Dance",
		"participantCategory": "women",
		"rules": "Three minutes max.",
		"prizes": {"women":[{"name":"1st","amount":"3000"}]},
		"contactPersons": [{"name":"Ravi","phone":"9123456780"},{"name":"","phone":""}],
		"leadAuth": {"id":"dance_lead","password":"secret2"}
	}`)

	p, err := decodeVia(t, fiber.MIMEApplicationJSON, body)
	require.NoError(t, err)

	assert.Equal(t, "Solo Dance", p.EventName)
	require.Len(t, p.ContactPersons, 1)
	require.NotNil(t, p.LeadAuth)
	assert.Equal(t, "dance_lead", p.LeadAuth.ID)
}

func TestDecodeEventPayloadInvalidJSONBody(t *testing.T) {
	body := bytes.NewBufferString(`{"eventName": `)
	_, err := decodeVia(t, fiber.MIMEApplicationJSON, body)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "body"))
}
