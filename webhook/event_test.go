package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventRejectsMalformedPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":     `{"type": "user.created"`,
		"missing type": `{"data": {"id": "ext_1"}}`,
		"missing id":   `{"type": "user.created", "data": {}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEvent([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestParseEventDecodesEnvelope(t *testing.T) {
	payload := `{
		"type": "user.created",
		"data": {
			"id": "ext_1",
			"email_addresses": [
				{"id": "idn_2", "email_address": "b@x.com"},
				{"id": "idn_1", "email_address": "a@x.com"}
			],
			"primary_email_address_id": "idn_1",
			"first_name": "Ann",
			"last_name": "Lee",
			"image_url": "https://img.example/ann.png"
		}
	}`

	evt, err := ParseEvent([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, EventUserCreated, evt.Type)
	assert.Equal(t, "ext_1", evt.Data.ID)
	assert.Equal(t, "a@x.com", evt.Data.PrimaryEmail())
	assert.Equal(t, "Ann Lee", evt.Data.DisplayName())
}

func TestPrimaryEmailFallsBackToFirst(t *testing.T) {
	data := EventData{
		EmailAddresses:        []emailAddress{{ID: "idn_9", EmailAddress: "only@x.com"}},
		PrimaryEmailAddressID: "idn_does_not_match",
	}
	assert.Equal(t, "only@x.com", data.PrimaryEmail())

	assert.Empty(t, EventData{}.PrimaryEmail())
}

func TestDisplayNameFallsBackToPlaceholder(t *testing.T) {
	assert.Equal(t, "User", EventData{}.DisplayName())
	assert.Equal(t, "User", EventData{FirstName: "  ", LastName: ""}.DisplayName())
	assert.Equal(t, "Ann", EventData{FirstName: "Ann"}.DisplayName())
	assert.Equal(t, "Lee", EventData{LastName: "Lee"}.DisplayName())
	assert.Equal(t, "Ann Lee", EventData{FirstName: " Ann ", LastName: " Lee "}.DisplayName())
}
