package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
)

func (h *Handler) CreateMenu(c *gin.Context) {
	actor, _ := currentActor(c)

	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		writeError(c, err)
		return
	}

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.ErrValidation)
		return
	}

	menu := &domain.Menu{
		CategoryID:        categoryID,
		Name:              req.Name,
		Description:       req.Description,
		Image:             req.Image,
		Price:             req.Price,
		AvailableQuantity: req.AvailableQuantity,
		OwnerID:           actor.ID,
	}
	if _, err := h.menus.Create(c.Request.Context(), menu); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The menu has been registered."})
}

func (h *Handler) ListMenus(c *gin.Context) {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		writeError(c, err)
		return
	}

	menus, err := h.menus.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

func (h *Handler) GetMenu(c *gin.Context) {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		writeError(c, err)
		return
	}
	menuID, err := paramID(c, "menuId")
	if err != nil {
		writeError(c, err)
		return
	}

	menu, err := h.menus.Get(c.Request.Context(), categoryID, menuID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": menu})
}

func (h *Handler) UpdateMenu(c *gin.Context) {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		writeError(c, err)
		return
	}
	menuID, err := paramID(c, "menuId")
	if err != nil {
		writeError(c, err)
		return
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.ErrValidation)
		return
	}

	change := domain.MenuChange{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Order:       req.Order,
		Status:      domain.MenuStatus(req.Status),
	}
	if _, err := h.menus.Update(c.Request.Context(), categoryID, menuID, change); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The menu has been updated."})
}

func (h *Handler) DeleteMenu(c *gin.Context) {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		writeError(c, err)
		return
	}
	menuID, err := paramID(c, "menuId")
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.menus.Delete(c.Request.Context(), categoryID, menuID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The menu has been deleted."})
}
