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

type withdrawalDoc struct {
	MembershipID string     `firestore:"membership_id"`
	UserID       string     `firestore:"user_id"`
	Amount       string     `firestore:"amount"`
	Status       string     `firestore:"status"`
	RequestedOn  time.Time  `firestore:"requested_on"`
	ResolvedOn   *time.Time `firestore:"resolved_on"`
}

func toWithdrawalDoc(w *domain.WithdrawalRequest) withdrawalDoc {
	return withdrawalDoc{
		MembershipID: w.MembershipID,
		UserID:       w.UserID,
		Amount:       decString(w.Amount),
		Status:       string(w.Status),
		RequestedOn:  w.RequestedOn,
		ResolvedOn:   w.ResolvedOn,
	}
}

func fromWithdrawalDoc(id string, d withdrawalDoc) (*domain.WithdrawalRequest, error) {
	amount, err := parseDec(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("withdrawal %s: %w", id, err)
	}
	return &domain.WithdrawalRequest{
		ID:           id,
		MembershipID: d.MembershipID,
		UserID:       d.UserID,
		Amount:       amount,
		Status:       domain.WithdrawalStatus(d.Status),
		RequestedOn:  d.RequestedOn,
		ResolvedOn:   d.ResolvedOn,
	}, nil
}

type withdrawalRepository struct {
	client *firestore.Client
}

func NewWithdrawalRepository(client *firestore.Client) repository.WithdrawalRepository {
	return &withdrawalRepository{client: client}
}

func (r *withdrawalRepository) Create(ctx context.Context, w *domain.WithdrawalRequest) error {
	logger.StoreCall("Create", colWithdrawals, "membership_id", w.MembershipID)
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.RequestedOn = time.Now().UTC()
	_, err := r.client.Collection(colWithdrawals).Doc(w.ID).Create(ctx, toWithdrawalDoc(w))
	logger.StoreResult("Create", colWithdrawals, err)
	return err
}

func (r *withdrawalRepository) GetByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	snap, err := r.client.Collection(colWithdrawals).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapGetErr(err)
	}
	var d withdrawalDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromWithdrawalDoc(snap.Ref.ID, d)
}

func (r *withdrawalRepository) Update(ctx context.Context, w *domain.WithdrawalRequest) error {
	logger.StoreCall("Update", colWithdrawals, "request_id", w.ID)
	_, err := r.client.Collection(colWithdrawals).Doc(w.ID).Set(ctx, toWithdrawalDoc(w))
	logger.StoreResult("Update", colWithdrawals, err)
	return err
}

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	return r.list(ctx, r.client.Collection(colWithdrawals).Where("user_id", "==", userID))
}

func (r *withdrawalRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.WithdrawalRequest, error) {
	q := r.client.Collection(colWithdrawals).
		Where("status", "==", string(domain.WithdrawalStatusPending)).
		Where("requested_on", "<", cutoff)
	return r.list(ctx, q)
}

func (r *withdrawalRepository) list(ctx context.Context, q firestore.Query) ([]domain.WithdrawalRequest, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()
	var requests []domain.WithdrawalRequest
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d withdrawalDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		w, err := fromWithdrawalDoc(snap.Ref.ID, d)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *w)
	}
	return requests, nil
}
