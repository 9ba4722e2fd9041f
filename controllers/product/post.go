package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Godswillconcept/expo-ecommerce/media"
	"github.com/Godswillconcept/expo-ecommerce/models"
)

// CreateProduct creates a product from a multipart form with optional images.
func CreateProduct(db *gorm.DB, uploads *media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		stock := 0
		if v := c.PostForm("stock"); v != "" {
			if stock, err = strconv.Atoi(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		var categoryID *uint
		if v := c.PostForm("category_id"); v != "" {
			id64, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(id64)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
			categoryID = &category.ID
		}

		// Optional image uploads
		var imageURLs []string
		if form, formErr := c.MultipartForm(); formErr == nil {
			for _, fh := range form.File["images"] {
				url, upErr := uploads.Upload(c.Request.Context(), fh, "products")
				if upErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
					return
				}
				imageURLs = append(imageURLs, url)
			}
		}
		imagesJSON, _ := json.Marshal(imageURLs)

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Stock:       stock,
			Images:      datatypes.JSON(imagesJSON),
			CategoryID:  categoryID,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
