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

// UpdateProduct updates an existing product by ID. Accepts the same form
// fields as CreateProduct; only the ones present are changed. New images
// replace the existing set.
func UpdateProduct(db *gorm.DB, uploads *media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("stock"); v != "" {
			stock, parseErr := strconv.Atoi(v)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
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
			product.CategoryID = &category.ID
		}

		if form, formErr := c.MultipartForm(); formErr == nil && len(form.File["images"]) > 0 {
			var imageURLs []string
			for _, fh := range form.File["images"] {
				url, upErr := uploads.Upload(c.Request.Context(), fh, "products")
				if upErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
					return
				}
				imageURLs = append(imageURLs, url)
			}
			imagesJSON, _ := json.Marshal(imageURLs)
			product.Images = datatypes.JSON(imagesJSON)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
