package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/services"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/categories/add
func CreateCategory(cats *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		cat, err := cats.AddCategory(c.Request.Context(), req.Name)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.FromCategory(*cat))
	}
}

// GetAllCategories returns all categories.
func GetAllCategories(cats *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := cats.GetAllCategories(c.Request.Context())
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromCategories(all))
	}
}

func GetCategoryByID(cats *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := controllers.ParseID(c.Param("id"), "id")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		cat, err := cats.GetCategoryByID(c.Request.Context(), id)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromCategory(*cat))
	}
}

func GetCategoryByName(cats *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := cats.GetCategoryByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromCategory(*cat))
	}
}

func UpdateCategory(cats *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := controllers.ParseID(c.Param("id"), "id")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		cat, err := cats.UpdateCategory(c.Request.Context(), id, req.Name)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromCategory(*cat))
	}
}

// DeleteCategory unlinks the category's items before removing it.
// DELETE /api/categories/delete_by_id?id=
func DeleteCategory(cats *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := controllers.QueryID(c, "id")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		if err := cats.DeleteCategory(c.Request.Context(), id); err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
