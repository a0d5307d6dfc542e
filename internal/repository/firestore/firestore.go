package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// Collection names.
const (
	colUsers         = "users"
	colLoans         = "loans"
	colMemberships   = "stokvel_memberships"
	colWithdrawals   = "withdrawal_requests"
	colFuneralCovers = "funeral_covers"
	colFuneralClaims = "funeral_claims"
	colProducts      = "products"
	colOrders        = "orders"
	colReferrals     = "referrals"
	colNotifications = "notifications"
)

type Store struct {
	client *firestore.Client
	repository.UserRepository
	repository.LoanRepository
	repository.StokvelRepository
	repository.WithdrawalRepository
	repository.FuneralRepository
	repository.ProductRepository
	repository.OrderRepository
	repository.ReferralRepository
	repository.NotificationRepository
}

func NewStore(client *firestore.Client) *Store {
	return &Store{
		client:                 client,
		UserRepository:         NewUserRepository(client),
		LoanRepository:         NewLoanRepository(client),
		StokvelRepository:      NewStokvelRepository(client),
		WithdrawalRepository:   NewWithdrawalRepository(client),
		FuneralRepository:      NewFuneralRepository(client),
		ProductRepository:      NewProductRepository(client),
		OrderRepository:        NewOrderRepository(client),
		ReferralRepository:     NewReferralRepository(client),
		NotificationRepository: NewNotificationRepository(client),
	}
}

func (s *Store) Close() error { return s.client.Close() }

// NewClient connects to the project's Firestore database.
func NewClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

// mapGetErr converts a document lookup failure into the domain error space.
func mapGetErr(err error) error {
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return err
}

// Monetary amounts are stored as canonical decimal strings so that no
// precision is lost through Firestore's float64 number type.
func decString(d decimal.Decimal) string { return d.String() }

func parseDec(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stored amount %q: %w", s, err)
	}
	return d, nil
}

// decFields collects the first parse failure across a document's amount
// fields so the mappers stay flat.
type decFields struct {
	err error
}

func (p *decFields) parse(s string) decimal.Decimal {
	d, err := parseDec(s)
	if err != nil && p.err == nil {
		p.err = err
	}
	return d
}
