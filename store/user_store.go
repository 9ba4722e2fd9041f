package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Godswillconcept/expo-ecommerce/models"
)

var (
	// ErrUserNotFound signals that no record matches the clerk id. It is a
	// defined condition, distinct from connection or constraint failures.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail signals a unique-constraint violation on email.
	ErrDuplicateEmail = errors.New("email already in use")
)

// UserAttrs is the authoritative field set carried by a provider event.
type UserAttrs struct {
	ClerkID  string
	Email    string
	Name     string
	ImageURL string
}

// UserStore is the user directory repository. It is constructed once at
// startup and injected wherever user records are read or reconciled.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByClerkID returns the record for the given external identity id.
func (s *UserStore) FindByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("clerk_id = ?", clerkID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertByClerkID inserts a record for the clerk id, or overwrites the
// synchronized fields if one already exists. The returned flag is true when
// a new record was inserted. Re-applying the same attrs is a no-op, which
// keeps the sync handlers safe under redelivery.
func (s *UserStore) UpsertByClerkID(ctx context.Context, attrs UserAttrs) (*models.User, bool, error) {
	var (
		user    models.User
		created bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("clerk_id = ?", attrs.ClerkID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				ClerkID:  attrs.ClerkID,
				Email:    attrs.Email,
				Name:     attrs.Name,
				ImageURL: attrs.ImageURL,
				Role:     models.RoleUser,
				IsActive: true,
			}
			created = true
			return tx.Create(&user).Error
		}
		if err != nil {
			return err
		}

		// The provider is authoritative: overwrite the synchronized fields.
		user.Email = attrs.Email
		user.Name = attrs.Name
		user.ImageURL = attrs.ImageURL
		return tx.Save(&user).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, ErrDuplicateEmail
		}
		return nil, false, err
	}
	return &user, created, nil
}

// UpdateByClerkID applies new email/name/avatar values to the record matching
// the clerk id. A missing record is not an error: the record is created,
// tolerating out-of-order delivery where an update arrives before its create.
func (s *UserStore) UpdateByClerkID(ctx context.Context, attrs UserAttrs) (*models.User, error) {
	user, _, err := s.UpsertByClerkID(ctx, attrs)
	return user, err
}

// DeleteByClerkID removes the record matching the clerk id; addresses and
// wishlist items go with it via cascade. Deleting an absent record is a no-op.
func (s *UserStore) DeleteByClerkID(ctx context.Context, clerkID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("clerk_id = ?", clerkID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// ListUsers returns every user, newest first, with only public fields filled.
func (s *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Select("id", "clerk_id", "email", "name", "image_url", "role", "is_active", "created_at", "updated_at").
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

// GetByClerkID returns a user with addresses and wishlist preloaded.
func (s *UserStore) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Wishlist.Product").
		Where("clerk_id = ?", clerkID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
