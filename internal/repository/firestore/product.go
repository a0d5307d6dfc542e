package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/repository"
)

type productDoc struct {
	Name      string    `firestore:"name"`
	Category  string    `firestore:"category"`
	UnitPrice string    `firestore:"unit_price"`
	InStock   bool      `firestore:"in_stock"`
	CreatedOn time.Time `firestore:"created_on"`
}

func fromProductDoc(id string, d productDoc) (*domain.Product, error) {
	price, err := parseDec(d.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, err)
	}
	return &domain.Product{
		ID:        id,
		Name:      d.Name,
		Category:  d.Category,
		UnitPrice: price,
		InStock:   d.InStock,
		CreatedOn: d.CreatedOn,
	}, nil
}

type productRepository struct {
	client *firestore.Client
}

func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	snap, err := r.client.Collection(colProducts).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapGetErr(err)
	}
	var d productDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromProductDoc(snap.Ref.ID, d)
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	iter := r.client.Collection(colProducts).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()
	var products []domain.Product
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d productDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		p, err := fromProductDoc(snap.Ref.ID, d)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}
