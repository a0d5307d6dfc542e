package service

import (
	"context"
	"errors"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/repository"
	"stokvel-backend/internal/utils"
)

var (
	ErrEmptyCart         = errors.New("cart has no items")
	ErrProductOutOfStock = errors.New("product is out of stock")
)

type storeService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	stokvels    StokvelService
	funerals    FuneralService
}

func NewStoreService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, stokvels StokvelService, funerals FuneralService) StoreService {
	return &storeService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		stokvels:    stokvels,
		funerals:    funerals,
	}
}

func (s *storeService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *storeService) PreviewTotals(ctx context.Context, userID string, items []domain.CartItem) (*domain.OrderTotals, error) {
	priced, err := s.priceItems(ctx, items)
	if err != nil {
		return nil, err
	}
	percent, err := s.discountFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals := utils.OrderTotals(priced, percent)
	return &totals, nil
}

func (s *storeService) Checkout(ctx context.Context, userID string, items []domain.CartItem) (*domain.Order, error) {
	priced, err := s.priceItems(ctx, items)
	if err != nil {
		return nil, err
	}
	percent, err := s.discountFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals := utils.OrderTotals(priced, percent)

	order := &domain.Order{
		UserID:          userID,
		Items:           priced,
		Subtotal:        totals.Subtotal,
		DiscountPercent: totals.DiscountPercent,
		Discount:        totals.Discount,
		Total:           totals.Total,
		Status:          domain.OrderStatusPlaced,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *storeService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// priceItems validates the cart against the catalog and reprices every line
// from the stored product, never from client input.
func (s *storeService) priceItems(ctx context.Context, items []domain.CartItem) ([]domain.CartItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	priced := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.InStock {
			return nil, ErrProductOutOfStock
		}
		priced = append(priced, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return priced, nil
}

func (s *storeService) discountFor(ctx context.Context, userID string) (int, error) {
	savings, err := s.stokvels.CumulativeSavings(ctx, userID)
	if err != nil {
		return 0, err
	}
	hasCover := false
	if _, err := s.funerals.GetActiveCover(ctx, userID); err == nil {
		hasCover = true
	} else if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}
	return utils.DiscountPercent(savings, hasCover), nil
}
