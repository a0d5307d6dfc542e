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

type loanDoc struct {
	UserID           string     `firestore:"user_id"`
	Principal        string     `firestore:"principal"`
	TermMonths       int        `firestore:"term_months"`
	Interest         string     `firestore:"interest"`
	ServiceFee       string     `firestore:"service_fee"`
	InitiationFee    string     `firestore:"initiation_fee"`
	TotalRepayment   string     `firestore:"total_repayment"`
	MonthlyRepayment string     `firestore:"monthly_repayment"`
	AmountPaid       string     `firestore:"amount_paid"`
	RemainingBalance string     `firestore:"remaining_balance"`
	Status           string     `firestore:"status"`
	DisbursedOn      *time.Time `firestore:"disbursed_on"`
	RejectionReason  string     `firestore:"rejection_reason"`
	CreatedOn        time.Time  `firestore:"created_on"`
	UpdatedOn        time.Time  `firestore:"updated_on"`
}

func toLoanDoc(l *domain.LoanAccount) loanDoc {
	return loanDoc{
		UserID:           l.UserID,
		Principal:        decString(l.Principal),
		TermMonths:       l.TermMonths,
		Interest:         decString(l.Interest),
		ServiceFee:       decString(l.ServiceFee),
		InitiationFee:    decString(l.InitiationFee),
		TotalRepayment:   decString(l.TotalRepayment),
		MonthlyRepayment: decString(l.MonthlyRepayment),
		AmountPaid:       decString(l.AmountPaid),
		RemainingBalance: decString(l.RemainingBalance),
		Status:           string(l.Status),
		DisbursedOn:      l.DisbursedOn,
		RejectionReason:  l.RejectionReason,
		CreatedOn:        l.CreatedOn,
		UpdatedOn:        l.UpdatedOn,
	}
}

func fromLoanDoc(id string, d loanDoc) (*domain.LoanAccount, error) {
	var p decFields
	l := &domain.LoanAccount{
		ID:               id,
		UserID:           d.UserID,
		Principal:        p.parse(d.Principal),
		TermMonths:       d.TermMonths,
		Interest:         p.parse(d.Interest),
		ServiceFee:       p.parse(d.ServiceFee),
		InitiationFee:    p.parse(d.InitiationFee),
		TotalRepayment:   p.parse(d.TotalRepayment),
		MonthlyRepayment: p.parse(d.MonthlyRepayment),
		AmountPaid:       p.parse(d.AmountPaid),
		RemainingBalance: p.parse(d.RemainingBalance),
		Status:           domain.LoanStatus(d.Status),
		DisbursedOn:      d.DisbursedOn,
		RejectionReason:  d.RejectionReason,
		CreatedOn:        d.CreatedOn,
		UpdatedOn:        d.UpdatedOn,
	}
	if p.err != nil {
		return nil, fmt.Errorf("loan %s: %w", id, p.err)
	}
	return l, nil
}

type loanRepository struct {
	client *firestore.Client
}

func NewLoanRepository(client *firestore.Client) repository.LoanRepository {
	return &loanRepository{client: client}
}

func (r *loanRepository) Create(ctx context.Context, l *domain.LoanAccount) error {
	logger.StoreCall("Create", colLoans, "user_id", l.UserID)
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	l.CreatedOn = now
	l.UpdatedOn = now
	_, err := r.client.Collection(colLoans).Doc(l.ID).Create(ctx, toLoanDoc(l))
	logger.StoreResult("Create", colLoans, err)
	return err
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.LoanAccount, error) {
	snap, err := r.client.Collection(colLoans).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapGetErr(err)
	}
	var d loanDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromLoanDoc(snap.Ref.ID, d)
}

func (r *loanRepository) Update(ctx context.Context, l *domain.LoanAccount) error {
	logger.StoreCall("Update", colLoans, "loan_id", l.ID)
	l.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(colLoans).Doc(l.ID).Set(ctx, toLoanDoc(l))
	logger.StoreResult("Update", colLoans, err)
	return err
}

func (r *loanRepository) ListByUser(ctx context.Context, userID string) ([]domain.LoanAccount, error) {
	return r.list(ctx, r.client.Collection(colLoans).Where("user_id", "==", userID))
}

func (r *loanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanAccount, error) {
	return r.list(ctx, r.client.Collection(colLoans).Where("status", "==", string(status)))
}

func (r *loanRepository) list(ctx context.Context, q firestore.Query) ([]domain.LoanAccount, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()
	var loans []domain.LoanAccount
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d loanDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		l, err := fromLoanDoc(snap.Ref.ID, d)
		if err != nil {
			return nil, err
		}
		loans = append(loans, *l)
	}
	return loans, nil
}
