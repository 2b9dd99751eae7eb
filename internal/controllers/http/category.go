package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
)

func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.ErrValidation
	}
	return id, nil
}

func (h *Handler) CreateCategory(c *gin.Context) {
	actor, _ := currentActor(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.ErrValidation)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), actor.ID, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The category has been registered.", "data": category})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategorySummary{
			CategoryID: category.ID,
			Name:       category.Name,
			Order:      category.Order,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := paramID(c, "categoryId")
	if err != nil {
		writeError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.ErrValidation)
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req.Name, req.Order)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The category has been updated.", "data": category})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := paramID(c, "categoryId")
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The category has been deleted."})
}
