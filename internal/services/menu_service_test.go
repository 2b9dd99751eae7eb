package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
	"github.com/jennaaaaaaaaa/node-lv5/internal/mocks"
)

func TestMenuService_Create(t *testing.T) {
	draft := func(price, quantity int64) *domain.Menu {
		return &domain.Menu{
			CategoryID:        TestCategoryID,
			Name:              TestMenuName,
			Description:       "tastes great",
			Image:             "https://images.example.com/menu.png",
			Price:             price,
			AvailableQuantity: quantity,
			OwnerID:           TestOwnerID,
		}
	}

	tests := []struct {
		name          string
		menu          *domain.Menu
		setupMocks    func(*mocks.MockMenuRepository, *mocks.MockCategoryRepository)
		expectedError error
	}{
		{
			name: "new menus start for sale",
			menu: draft(TestMenuPrice, 10),
			setupMocks: func(mockMenus *mocks.MockMenuRepository, mockCats *mocks.MockCategoryRepository) {
				mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(CreateMockCategory(TestCategoryID, "Desserts", 1), nil)
				mockMenus.On("Create", mock.Anything, mock.AnythingOfType("*domain.Menu")).Return(nil).Run(func(args mock.Arguments) {
					m := args.Get(1).(*domain.Menu)
					m.ID = TestMenuID
					m.Order = 1
				})
			},
		},
		{
			name: "missing category surfaces category not found",
			menu: draft(TestMenuPrice, 10),
			setupMocks: func(mockMenus *mocks.MockMenuRepository, mockCats *mocks.MockCategoryRepository) {
				mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(nil, nil)
			},
			expectedError: apperr.ErrCategoryNotFound,
		},
		{
			name: "negative price is rejected with the price error",
			menu: draft(-100, 10),
			setupMocks: func(mockMenus *mocks.MockMenuRepository, mockCats *mocks.MockCategoryRepository) {
				mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(CreateMockCategory(TestCategoryID, "Desserts", 1), nil)
			},
			expectedError: apperr.ErrPriceBelowZero,
		},
		{
			name: "negative stock is a validation failure",
			menu: draft(TestMenuPrice, -1),
			setupMocks: func(mockMenus *mocks.MockMenuRepository, mockCats *mocks.MockCategoryRepository) {
				mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(CreateMockCategory(TestCategoryID, "Desserts", 1), nil)
			},
			expectedError: apperr.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMenus := new(mocks.MockMenuRepository)
			mockCats := new(mocks.MockCategoryRepository)
			tt.setupMocks(mockMenus, mockCats)

			service := NewMenuService(mockMenus, mockCats)
			created, err := service.Create(context.Background(), tt.menu)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.MenuForSale, created.Status)
			}
			mockMenus.AssertExpectations(t)
			mockCats.AssertExpectations(t)
		})
	}
}

func TestMenuService_Update(t *testing.T) {
	change := domain.MenuChange{
		Name:        TestMenuName,
		Description: "still tastes great",
		Price:       TestMenuPrice,
		Order:       2,
		Status:      domain.MenuForSale,
	}

	t.Run("relocation and edits go through the repository", func(t *testing.T) {
		mockMenus := new(mocks.MockMenuRepository)
		mockCats := new(mocks.MockCategoryRepository)
		mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(CreateMockCategory(TestCategoryID, "Desserts", 1), nil)
		mockMenus.On("FindByID", mock.Anything, TestMenuID).Return(CreateMockMenu(TestMenuID, TestCategoryID, TestMenuPrice, 10), nil)
		updated := CreateMockMenu(TestMenuID, TestCategoryID, TestMenuPrice, 10)
		updated.Order = 2
		mockMenus.On("Update", mock.Anything, TestMenuID, change).Return(updated, nil)

		service := NewMenuService(mockMenus, mockCats)
		out, err := service.Update(context.Background(), TestCategoryID, TestMenuID, change)

		assert.NoError(t, err)
		assert.Equal(t, 2, out.Order)
		mockMenus.AssertExpectations(t)
		mockCats.AssertExpectations(t)
	})

	t.Run("missing menu surfaces menu not found", func(t *testing.T) {
		mockMenus := new(mocks.MockMenuRepository)
		mockCats := new(mocks.MockCategoryRepository)
		mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(CreateMockCategory(TestCategoryID, "Desserts", 1), nil)
		mockMenus.On("FindByID", mock.Anything, uint64(404)).Return(nil, nil)

		service := NewMenuService(mockMenus, mockCats)
		_, err := service.Update(context.Background(), TestCategoryID, 404, change)

		assert.ErrorIs(t, err, apperr.ErrMenuNotFound)
	})

	t.Run("invalid status is a validation failure", func(t *testing.T) {
		bad := change
		bad.Status = domain.MenuStatus("ON_HOLD")

		mockMenus := new(mocks.MockMenuRepository)
		mockCats := new(mocks.MockCategoryRepository)
		mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(CreateMockCategory(TestCategoryID, "Desserts", 1), nil)
		mockMenus.On("FindByID", mock.Anything, TestMenuID).Return(CreateMockMenu(TestMenuID, TestCategoryID, TestMenuPrice, 10), nil)

		service := NewMenuService(mockMenus, mockCats)
		_, err := service.Update(context.Background(), TestCategoryID, TestMenuID, bad)

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestMenuService_Delete(t *testing.T) {
	t.Run("soft-deletes an existing menu", func(t *testing.T) {
		mockMenus := new(mocks.MockMenuRepository)
		mockCats := new(mocks.MockCategoryRepository)
		mockCats.On("FindByID", mock.Anything, TestCategoryID).Return(CreateMockCategory(TestCategoryID, "Desserts", 1), nil)
		mockMenus.On("FindByID", mock.Anything, TestMenuID).Return(CreateMockMenu(TestMenuID, TestCategoryID, TestMenuPrice, 10), nil)
		mockMenus.On("Delete", mock.Anything, TestMenuID).Return(nil)

		service := NewMenuService(mockMenus, mockCats)
		assert.NoError(t, service.Delete(context.Background(), TestCategoryID, TestMenuID))
		mockMenus.AssertExpectations(t)
	})

	t.Run("missing category surfaces category not found", func(t *testing.T) {
		mockMenus := new(mocks.MockMenuRepository)
		mockCats := new(mocks.MockCategoryRepository)
		mockCats.On("FindByID", mock.Anything, uint64(5)).Return(nil, nil)

		service := NewMenuService(mockMenus, mockCats)
		assert.ErrorIs(t, service.Delete(context.Background(), 5, TestMenuID), apperr.ErrCategoryNotFound)
	})
}
