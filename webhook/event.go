package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EventType tags a Clerk user lifecycle event.
type EventType string

const (
	EventUserCreated EventType = "user.created"
	EventUserUpdated EventType = "user.updated"
	EventUserDeleted EventType = "user.deleted"
)

// Event is the decoded webhook envelope. Events are ephemeral: they are
// never persisted, only reconciled into the user directory.
type Event struct {
	Type EventType `json:"type"`
	Data EventData `json:"data"`
}

// EventData carries the user payload of a lifecycle event. Deleted events
// carry only the id.
type EventData struct {
	ID                    string         `json:"id"`
	EmailAddresses        []emailAddress `json:"email_addresses"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	ImageURL              string         `json:"image_url"`
}

type emailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// ParseEvent decodes and validates a raw envelope. It rejects payloads
// without an id so no handler ever runs on a malformed event.
func ParseEvent(payload []byte) (*Event, error) {
	var evt Event
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, fmt.Errorf("invalid event payload: %w", err)
	}
	if evt.Type == "" {
		return nil, fmt.Errorf("event is missing a type")
	}
	if evt.Data.ID == "" {
		return nil, fmt.Errorf("event is missing the user id")
	}
	return &evt, nil
}

// PrimaryEmail returns the address marked primary, falling back to the
// first one present.
func (d EventData) PrimaryEmail() string {
	for _, ea := range d.EmailAddresses {
		if ea.ID != "" && ea.ID == d.PrimaryEmailAddressID {
			return ea.EmailAddress
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}

// DisplayName builds the stored name from first/last, falling back to a
// generic placeholder when both are empty.
func (d EventData) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName))
	if name == "" {
		return "User"
	}
	return name
}
