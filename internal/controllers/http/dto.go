package http

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=20"`
}

type UpdateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=20"`
	Order int    `json:"order" binding:"required"`
}

type CategorySummary struct {
	CategoryID uint64 `json:"categoryId"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
}

type CreateMenuRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description" binding:"required"`
	Image             string `json:"image" binding:"required"`
	Price             int64  `json:"price"`
	AvailableQuantity int64  `json:"availableQuantity"`
}

type UpdateMenuRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price"`
	Order       int    `json:"order" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

type PlaceOrderRequest struct {
	MenuID   uint64 `json:"menuId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
