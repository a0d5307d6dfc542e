package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository"
)

type cartItemDoc struct {
	ProductID string `firestore:"product_id"`
	Name      string `firestore:"name"`
	UnitPrice string `firestore:"unit_price"`
	Quantity  int    `firestore:"quantity"`
}

type orderDoc struct {
	UserID          string        `firestore:"user_id"`
	Items           []cartItemDoc `firestore:"items"`
	Subtotal        string        `firestore:"subtotal"`
	DiscountPercent int           `firestore:"discount_percent"`
	Discount        string        `firestore:"discount"`
	Total           string        `firestore:"total"`
	Status          string        `firestore:"status"`
	CreatedOn       time.Time     `firestore:"created_on"`
}

func toOrderDoc(o *domain.Order) orderDoc {
	items := make([]cartItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, cartItemDoc{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: decString(it.UnitPrice),
			Quantity:  it.Quantity,
		})
	}
	return orderDoc{
		UserID:          o.UserID,
		Items:           items,
		Subtotal:        decString(o.Subtotal),
		DiscountPercent: o.DiscountPercent,
		Discount:        decString(o.Discount),
		Total:           decString(o.Total),
		Status:          string(o.Status),
		CreatedOn:       o.CreatedOn,
	}
}

func fromOrderDoc(id string, d orderDoc) (*domain.Order, error) {
	var p decFields
	items := make([]domain.CartItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: p.parse(it.UnitPrice),
			Quantity:  it.Quantity,
		})
	}
	o := &domain.Order{
		ID:              id,
		UserID:          d.UserID,
		Items:           items,
		Subtotal:        p.parse(d.Subtotal),
		DiscountPercent: d.DiscountPercent,
		Discount:        p.parse(d.Discount),
		Total:           p.parse(d.Total),
		Status:          domain.OrderStatus(d.Status),
		CreatedOn:       d.CreatedOn,
	}
	if p.err != nil {
		return nil, fmt.Errorf("order %s: %w", id, p.err)
	}
	return o, nil
}

type orderRepository struct {
	client *firestore.Client
}

func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	logger.StoreCall("Create", colOrders, "user_id", o.UserID)
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedOn = time.Now().UTC()
	_, err := r.client.Collection(colOrders).Doc(o.ID).Create(ctx, toOrderDoc(o))
	logger.StoreResult("Create", colOrders, err)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	snap, err := r.client.Collection(colOrders).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapGetErr(err)
	}
	var d orderDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromOrderDoc(snap.Ref.ID, d)
}

func (r *orderRepository) Update(ctx context.Context, o *domain.Order) error {
	logger.StoreCall("Update", colOrders, "order_id", o.ID)
	_, err := r.client.Collection(colOrders).Doc(o.ID).Set(ctx, toOrderDoc(o))
	logger.StoreResult("Update", colOrders, err)
	return err
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	iter := r.client.Collection(colOrders).Where("user_id", "==", userID).Documents(ctx)
	defer iter.Stop()
	var orders []domain.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d orderDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		o, err := fromOrderDoc(snap.Ref.ID, d)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}
