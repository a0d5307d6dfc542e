package unit

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/service"
)

type storeFixture struct {
	productRepo *MockProductRepo
	orderRepo   *MockOrderRepo
	stokvelRepo *MockStokvelRepo
	funeralRepo *MockFuneralRepo
	svc         service.StoreService
}

func newStoreFixture() *storeFixture {
	f := &storeFixture{
		productRepo: new(MockProductRepo),
		orderRepo:   new(MockOrderRepo),
		stokvelRepo: new(MockStokvelRepo),
		funeralRepo: new(MockFuneralRepo),
	}
	stokvelSvc := service.NewStokvelService(f.stokvelRepo, new(MockWithdrawalRepo), service.NewNotificationService(new(MockNotificationRepo)))
	funeralSvc := service.NewFuneralService(f.funeralRepo)
	f.svc = service.NewStoreService(f.productRepo, f.orderRepo, stokvelSvc, funeralSvc)
	return f
}

func (f *storeFixture) withSavings(ctx context.Context, amount int64, hasCover bool) {
	f.stokvelRepo.On("ListMembershipsByUser", ctx, "uid-1").Return([]domain.StokvelMembership{
		{ID: "m1", Balance: decimal.NewFromInt(amount), Status: domain.MembershipStatusActive},
	}, nil)
	if hasCover {
		f.funeralRepo.On("GetActiveByUser", ctx, "uid-1").Return(&domain.FuneralCoverMembership{ID: "cov-1"}, nil)
	} else {
		f.funeralRepo.On("GetActiveByUser", ctx, "uid-1").Return(nil, domain.ErrNotFound)
	}
}

func TestStoreService_Checkout(t *testing.T) {
	ctx := context.Background()

	maize := &domain.Product{ID: "p1", Name: "Maize Meal 10kg", UnitPrice: decimal.NewFromInt(100), InStock: true}
	oil := &domain.Product{ID: "p2", Name: "Cooking Oil 2L", UnitPrice: decimal.NewFromInt(50), InStock: true}

	t.Run("Prices come from the catalog and the discount tier applies", func(t *testing.T) {
		f := newStoreFixture()
		f.productRepo.On("GetByID", ctx, "p1").Return(maize, nil)
		f.productRepo.On("GetByID", ctx, "p2").Return(oil, nil)
		f.withSavings(ctx, 12000, true) // savings >= 10000 with cover -> 30%
		f.orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

		order, err := f.svc.Checkout(ctx, "uid-1", []domain.CartItem{
			// Client-supplied prices are ignored.
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(1)},
			{ProductID: "p2", Quantity: 1},
		})
		assert.NoError(t, err)
		assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal: %s", order.Subtotal)
		assert.Equal(t, 30, order.DiscountPercent)
		assert.True(t, order.Discount.Equal(decimal.NewFromInt(75)), "discount: %s", order.Discount)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(175)), "total: %s", order.Total)
		assert.Equal(t, domain.OrderStatusPlaced, order.Status)
		assert.True(t, order.Items[0].UnitPrice.Equal(maize.UnitPrice))
	})

	t.Run("No savings means no discount", func(t *testing.T) {
		f := newStoreFixture()
		f.productRepo.On("GetByID", ctx, "p2").Return(oil, nil)
		f.withSavings(ctx, 3000, true) // below every tier even with cover
		f.orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

		order, err := f.svc.Checkout(ctx, "uid-1", []domain.CartItem{{ProductID: "p2", Quantity: 1}})
		assert.NoError(t, err)
		assert.Equal(t, 0, order.DiscountPercent)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(50)), "total: %s", order.Total)
	})

	t.Run("Empty cart", func(t *testing.T) {
		f := newStoreFixture()
		_, err := f.svc.Checkout(ctx, "uid-1", nil)
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("Out of stock product", func(t *testing.T) {
		f := newStoreFixture()
		f.productRepo.On("GetByID", ctx, "p3").Return(&domain.Product{ID: "p3", InStock: false}, nil)

		_, err := f.svc.Checkout(ctx, "uid-1", []domain.CartItem{{ProductID: "p3", Quantity: 1}})
		assert.ErrorIs(t, err, service.ErrProductOutOfStock)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		f := newStoreFixture()
		_, err := f.svc.Checkout(ctx, "uid-1", []domain.CartItem{{ProductID: "p1", Quantity: 0}})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestStoreService_PreviewTotals(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture()

	f.productRepo.On("GetByID", ctx, "p1").Return(&domain.Product{
		ID: "p1", Name: "Maize Meal 10kg", UnitPrice: decimal.NewFromInt(100), InStock: true,
	}, nil)
	f.withSavings(ctx, 6000, false) // 5000..9999 without cover -> 10%

	totals, err := f.svc.PreviewTotals(ctx, "uid-1", []domain.CartItem{{ProductID: "p1", Quantity: 1}})
	assert.NoError(t, err)
	assert.Equal(t, 10, totals.DiscountPercent)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(90)), "total: %s", totals.Total)
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
