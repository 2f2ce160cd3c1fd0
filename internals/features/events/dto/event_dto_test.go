package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahotsav_backend/internals/features/events/model"
)

func TestFilterContacts(t *testing.T) {
	in := []ContactPerson{
		{Name: "Asha", Phone: "9876543210"},
		{Name: "", Phone: ""},
		{Name: "Ravi"},
		{Phone: "9123456780"},
	}
	out := FilterContacts(in)
	require.Len(t, out, 3)
	assert.Equal(t, "Asha", out[0].Name)
	assert.Equal(t, "Ravi", out[1].Name)
	assert.Equal(t, "9123456780", out[2].Phone)
}

func TestEventPayloadValidate(t *testing.T) {
	valid := EventPayload{
		EventCategory:       "sports",
		EventName:           "Chess",
		ParticipantCategory: "men & women",
		LeadAuth:            &LeadAuth{ID: "chess_lead", Password: "secret1"},
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.EventName = "  "
	assert.Error(t, missingName.Validate())

	missingAuth := valid
	missingAuth.LeadAuth = nil
	assert.Error(t, missingAuth.Validate())

	emptyAuthPassword := valid
	emptyAuthPassword.LeadAuth = &LeadAuth{ID: "chess_lead"}
	assert.Error(t, emptyAuthPassword.Validate())
}

func TestPrizesJSONDefaults(t *testing.T) {
	var p EventPayload
	b, err := p.PrizesJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	p.Prizes = PrizeSet{"men": {{Name: "1st", Amount: "5000"}}}
	b, err = p.PrizesJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"men":[{"name":"1st","amount":"5000"}]}`, string(b))
}

func TestContactsJSONDefaults(t *testing.T) {
	var p EventPayload
	b, err := p.ContactsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestIsOwner(t *testing.T) {
	leadID := uuid.New()
	ev := &model.EventModel{AdminID: "sports", LeadAdminID: leadID}

	assert.True(t, IsOwner(ev, "sports", ""), "matching public admin id")
	assert.True(t, IsOwner(ev, "culturals", leadID.String()), "event's own lead")
	assert.False(t, IsOwner(ev, "culturals", uuid.NewString()), "unrelated admin")
	assert.False(t, IsOwner(ev, "", ""), "anonymous")
}
