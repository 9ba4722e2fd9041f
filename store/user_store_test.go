package store

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Godswillconcept/expo-ecommerce/models"
)

func newTestStore(t *testing.T) *UserStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.WishlistItem{},
	))

	return NewUserStore(db)
}

func annAttrs() UserAttrs {
	return UserAttrs{
		ClerkID:  "ext_1",
		Email:    "a@x.com",
		Name:     "Ann Lee",
		ImageURL: "https://img.example/ann.png",
	}
}

func TestUpsertInsertsThenOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, created, err := s.UpsertByClerkID(ctx, annAttrs())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "ext_1", user.ClerkID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	attrs := annAttrs()
	attrs.Name = "Ann B. Lee"
	again, created, err := s.UpsertByClerkID(ctx, attrs)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Ann B. Lee", again.Name)
}

func TestUpsertIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.UpsertByClerkID(ctx, annAttrs())
	require.NoError(t, err)
	_, created, err := s.UpsertByClerkID(ctx, annAttrs())
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, _, err := s.UpsertByClerkID(ctx, annAttrs())
	require.NoError(t, err)

	attrs := annAttrs()
	attrs.ClerkID = "ext_2" // different identity, same email
	_, _, err = s.UpsertByClerkID(ctx, attrs)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateInsertsWhenMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.UpdateByClerkID(ctx, annAttrs())
	require.NoError(t, err)
	assert.Equal(t, "ext_1", user.ClerkID)

	found, err := s.FindByClerkID(ctx, "ext_1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", found.Email)
}

func TestFindReturnsTypedNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindByClerkID(context.Background(), "ext_missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteCascadesAndIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, _, err := s.UpsertByClerkID(ctx, annAttrs())
	require.NoError(t, err)

	product := models.Product{Name: "Desk Lamp", Price: 29.99}
	require.NoError(t, s.db.Create(&product).Error)
	require.NoError(t, s.db.Create(&models.Address{
		UserID: user.ID, FullName: "Ann Lee", Phone: "555-0101",
		StreetAddress: "1 Main St", City: "Springfield", State: "IL",
		PostalCode: "62701", Country: "United States",
	}).Error)
	require.NoError(t, s.db.Create(&models.WishlistItem{
		UserID: user.ID, ProductID: product.ID, Name: product.Name, Price: product.Price,
	}).Error)

	require.NoError(t, s.DeleteByClerkID(ctx, "ext_1"))

	_, err = s.FindByClerkID(ctx, "ext_1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	var addresses, wishlist int64
	require.NoError(t, s.db.Model(&models.Address{}).Count(&addresses).Error)
	require.NoError(t, s.db.Model(&models.WishlistItem{}).Count(&wishlist).Error)
	assert.Zero(t, addresses)
	assert.Zero(t, wishlist)

	// Deleting again is a defined no-op, not an error.
	assert.NoError(t, s.DeleteByClerkID(ctx, "ext_1"))
}

func TestWishlistPairIsUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, _, err := s.UpsertByClerkID(ctx, annAttrs())
	require.NoError(t, err)

	product := models.Product{Name: "Desk Lamp", Price: 29.99}
	require.NoError(t, s.db.Create(&product).Error)

	item := models.WishlistItem{UserID: user.ID, ProductID: product.ID, Name: product.Name, Price: product.Price}
	require.NoError(t, s.db.Create(&item).Error)

	dup := models.WishlistItem{UserID: user.ID, ProductID: product.ID, Name: product.Name, Price: product.Price}
	err = s.db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
