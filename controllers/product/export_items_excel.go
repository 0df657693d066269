package productcontroller

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /admin/products/export-excel
func ExportItemsToExcel(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// buffered so a failure can still be reported as JSON
		var buf bytes.Buffer
		if err := items.ExportExcel(c.Request.Context(), &buf); err != nil {
			controllers.Error(c, err)
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=items.xlsx")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
