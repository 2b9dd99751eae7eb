package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
	"github.com/jennaaaaaaaaa/node-lv5/internal/services"
)

type Handler struct {
	categories *services.CategoryService
	menus      *services.MenuService
	orders     *services.OrderService
}

func NewHandler(categories *services.CategoryService, menus *services.MenuService, orders *services.OrderService) *Handler {
	return &Handler{
		categories: categories,
		menus:      menus,
		orders:     orders,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api", Identity())

	api.POST("/categories", RequireRole(domain.RoleOwner), h.CreateCategory)
	api.GET("/categories", h.ListCategories)
	api.PATCH("/categories/:categoryId", RequireRole(domain.RoleOwner), h.UpdateCategory)
	api.DELETE("/categories/:categoryId", RequireRole(domain.RoleOwner), h.DeleteCategory)

	api.POST("/categories/:categoryId/menus", RequireRole(domain.RoleOwner), h.CreateMenu)
	api.GET("/categories/:categoryId/menus", h.ListMenus)
	api.GET("/categories/:categoryId/menus/:menuId", h.GetMenu)
	api.PATCH("/categories/:categoryId/menus/:menuId", RequireRole(domain.RoleOwner), h.UpdateMenu)
	api.DELETE("/categories/:categoryId/menus/:menuId", RequireRole(domain.RoleOwner), h.DeleteMenu)

	api.POST("/orders", RequireRole(domain.RoleCustomer), h.PlaceOrder)
	api.GET("/orders/customer", RequireRole(domain.RoleCustomer), h.ListCustomerOrders)
	api.GET("/orders/owner", RequireRole(domain.RoleOwner), h.ListAllOrders)
	api.PATCH("/orders/:orderId/status", RequireRole(domain.RoleOwner), h.UpdateOrderStatus)
	api.DELETE("/orders/:orderId", RequireRole(domain.RoleOwner), h.DeleteOrder)
}
