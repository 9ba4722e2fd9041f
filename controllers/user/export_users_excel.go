package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Godswillconcept/expo-ecommerce/store"
)

// GET /api/admin/users/export-excel
func ExportUsersToExcel(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Users")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "ClerkID", "Email", "Name", "Role", "Active", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, u := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(u.ID)
			row.AddCell().SetValue(u.ClerkID)
			row.AddCell().SetValue(u.Email)
			row.AddCell().SetValue(u.Name)
			row.AddCell().SetValue(string(u.Role))
			row.AddCell().SetValue(u.IsActive)
			row.AddCell().SetValue(u.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=users.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
