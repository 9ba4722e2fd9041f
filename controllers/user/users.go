package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Godswillconcept/expo-ecommerce/store"
)

// GET /api/admin/users
func GetAllUsers(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/admin/users/:clerk_id
func GetUserByClerkID(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		clerkID := c.Param("clerk_id")
		if clerkID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clerk_id is required"})
			return
		}

		user, err := users.GetByClerkID(c.Request.Context(), clerkID)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /api/admin/users/:clerk_id/wishlist
func GetUserWishlist(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetByClerkID(c.Request.Context(), c.Param("clerk_id"))
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, user.Wishlist)
	}
}

// GET /api/admin/users/:clerk_id/addresses
func GetUserAddresses(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetByClerkID(c.Request.Context(), c.Param("clerk_id"))
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		c.JSON(http.StatusOK, user.Addresses)
	}
}
