package webhook

import (
	"context"

	"github.com/Godswillconcept/expo-ecommerce/models"
	"github.com/Godswillconcept/expo-ecommerce/store"
)

// SyncResult reports what a handler did, for logging and the admin feed.
type SyncResult struct {
	Type    EventType    `json:"type"`
	ClerkID string       `json:"clerkId"`
	Created bool         `json:"created"`
	User    *models.User `json:"-"`
}

// Syncer reconciles lifecycle events into the user directory. Every handler
// is idempotent: re-applying an event with the same payload leaves the store
// exactly as a single application would, so redelivery is always safe.
type Syncer struct {
	users *store.UserStore
}

func NewSyncer(users *store.UserStore) *Syncer {
	return &Syncer{users: users}
}

func (s *Syncer) attrs(data EventData) store.UserAttrs {
	return store.UserAttrs{
		ClerkID:  data.ID,
		Email:    data.PrimaryEmail(),
		Name:     data.DisplayName(),
		ImageURL: data.ImageURL,
	}
}

// SyncUser handles user.created: upsert keyed on the clerk id, overwriting
// the synchronized fields with the event's values when the record exists.
func (s *Syncer) SyncUser(ctx context.Context, data EventData) (SyncResult, error) {
	user, created, err := s.users.UpsertByClerkID(ctx, s.attrs(data))
	if err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Type: EventUserCreated, ClerkID: data.ID, Created: created, User: user}, nil
}

// UpdateUser handles user.updated. A missing record is created rather than
// treated as an error, so an update that outruns its create still lands.
func (s *Syncer) UpdateUser(ctx context.Context, data EventData) (SyncResult, error) {
	user, err := s.users.UpdateByClerkID(ctx, s.attrs(data))
	if err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Type: EventUserUpdated, ClerkID: data.ID, User: user}, nil
}

// DeleteUser handles user.deleted. Deleting an absent record is a no-op.
func (s *Syncer) DeleteUser(ctx context.Context, data EventData) (SyncResult, error) {
	if err := s.users.DeleteByClerkID(ctx, data.ID); err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Type: EventUserDeleted, ClerkID: data.ID}, nil
}
