package webhook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svix "github.com/svix/svix-webhooks/go"
	"gorm.io/gorm"

	"github.com/Godswillconcept/expo-ecommerce/store"
)

const testSigningSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

func newWebhookRouter(t *testing.T) (*gin.Engine, *gorm.DB, *store.UserStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	users := store.NewUserStore(db)
	dispatcher := NewDispatcher(NewSyncer(users), nil)

	r := gin.New()
	r.POST("/api/webhooks/clerk", Handler(testSigningSecret, dispatcher))
	return r, db, users
}

func signedRequest(t *testing.T, payload string) *http.Request {
	t.Helper()

	wh, err := svix.NewWebhook(testSigningSecret)
	require.NoError(t, err)

	msgID := "msg_test"
	ts := time.Now()
	signature, err := wh.Sign(msgID, ts, []byte(payload))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/clerk", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("svix-id", msgID)
	req.Header.Set("svix-timestamp", fmt.Sprintf("%d", ts.Unix()))
	req.Header.Set("svix-signature", signature)
	return req
}

const createdPayload = `{
	"type": "user.created",
	"data": {
		"id": "ext_1",
		"email_addresses": [{"id": "idn_1", "email_address": "a@x.com"}],
		"primary_email_address_id": "idn_1",
		"first_name": "Ann",
		"last_name": "Lee",
		"image_url": "https://img.example/ann.png"
	}
}`

func TestHandlerRejectsUnsignedDelivery(t *testing.T) {
	r, _, _ := newWebhookRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/clerk", bytes.NewBufferString(createdPayload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandlerRejectsTamperedPayload(t *testing.T) {
	r, _, users := newWebhookRouter(t)

	signed := signedRequest(t, createdPayload)
	tampered := httptest.NewRequest(http.MethodPost, "/api/webhooks/clerk",
		bytes.NewBufferString(`{"type":"user.deleted","data":{"id":"ext_1"}}`))
	tampered.Header = signed.Header.Clone()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, tampered)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Nothing was mutated.
	_, err := users.FindByClerkID(context.Background(), "ext_1")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestHandlerWithoutSecretRefusesDeliveries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	dispatcher := NewDispatcher(NewSyncer(store.NewUserStore(db)), nil)

	r := gin.New()
	r.POST("/api/webhooks/clerk", Handler("", dispatcher))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(t, createdPayload))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandlerIngestsCreatedEvent(t *testing.T) {
	r, _, users := newWebhookRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(t, createdPayload))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":true`)

	user, err := users.FindByClerkID(context.Background(), "ext_1")
	require.NoError(t, err)
	assert.Equal(t, "ext_1", user.ClerkID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Ann Lee", user.Name)
}

func TestHandlerIsIdempotentUnderRedelivery(t *testing.T) {
	r, db, _ := newWebhookRouter(t)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, signedRequest(t, createdPayload))
		require.Equal(t, http.StatusOK, w.Code)
	}

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestHandlerRejectsMalformedEnvelope(t *testing.T) {
	r, _, _ := newWebhookRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(t, `{"type": "user.created", "data": {}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerRejectsUnknownEventType(t *testing.T) {
	r, _, _ := newWebhookRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(t, `{"type": "session.created", "data": {"id": "ext_1"}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerReportsStoreFailureForRetry(t *testing.T) {
	r, _, _ := newWebhookRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(t, createdPayload))
	require.Equal(t, http.StatusOK, w.Code)

	// Duplicate email under a different clerk id: constraint violation must
	// surface as 5xx so the provider's retry loop sees the failure.
	duplicate := `{
		"type": "user.created",
		"data": {
			"id": "ext_2",
			"email_addresses": [{"id": "idn_2", "email_address": "a@x.com"}],
			"primary_email_address_id": "idn_2",
			"first_name": "Bob",
			"last_name": "Ray"
		}
	}`
	w = httptest.NewRecorder()
	r.ServeHTTP(w, signedRequest(t, duplicate))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
