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

type familyDoc struct {
	SpouseName      string   `firestore:"spouse_name"`
	Children        []string `firestore:"children"`
	ExtendedMembers []string `firestore:"extended_members"`
}

type funeralCoverDoc struct {
	UserID             string     `firestore:"user_id"`
	PlanID             string     `firestore:"plan_id"`
	StartDate          time.Time  `firestore:"start_date"`
	AdditionalBenefits []string   `firestore:"additional_benefits"`
	MonthlyPremium     string     `firestore:"monthly_premium"`
	Family             *familyDoc `firestore:"family"`
	Status             string     `firestore:"status"`
	CreatedOn          time.Time  `firestore:"created_on"`
	UpdatedOn          time.Time  `firestore:"updated_on"`
}

type funeralClaimDoc struct {
	MembershipID    string    `firestore:"membership_id"`
	UserID          string    `firestore:"user_id"`
	CauseOfDeath    string    `firestore:"cause_of_death"`
	MemberCategory  string    `firestore:"member_category"`
	Status          string    `firestore:"status"`
	RejectionReason string    `firestore:"rejection_reason"`
	FiledOn         time.Time `firestore:"filed_on"`
}

func toFuneralCoverDoc(m *domain.FuneralCoverMembership) funeralCoverDoc {
	doc := funeralCoverDoc{
		UserID:             m.UserID,
		PlanID:             string(m.PlanID),
		StartDate:          m.StartDate,
		AdditionalBenefits: m.AdditionalBenefits,
		MonthlyPremium:     decString(m.MonthlyPremium),
		Status:             string(m.Status),
		CreatedOn:          m.CreatedOn,
		UpdatedOn:          m.UpdatedOn,
	}
	if m.Family != nil {
		doc.Family = &familyDoc{
			SpouseName:      m.Family.SpouseName,
			Children:        m.Family.Children,
			ExtendedMembers: m.Family.ExtendedMembers,
		}
	}
	return doc
}

func fromFuneralCoverDoc(id string, d funeralCoverDoc) (*domain.FuneralCoverMembership, error) {
	premium, err := parseDec(d.MonthlyPremium)
	if err != nil {
		return nil, fmt.Errorf("funeral cover %s: %w", id, err)
	}
	m := &domain.FuneralCoverMembership{
		ID:                 id,
		UserID:             d.UserID,
		PlanID:             domain.FuneralPlanID(d.PlanID),
		StartDate:          d.StartDate,
		AdditionalBenefits: d.AdditionalBenefits,
		MonthlyPremium:     premium,
		Status:             domain.CoverStatus(d.Status),
		CreatedOn:          d.CreatedOn,
		UpdatedOn:          d.UpdatedOn,
	}
	if d.Family != nil {
		m.Family = &domain.FamilyDetails{
			SpouseName:      d.Family.SpouseName,
			Children:        d.Family.Children,
			ExtendedMembers: d.Family.ExtendedMembers,
		}
	}
	return m, nil
}

type funeralRepository struct {
	client *firestore.Client
}

func NewFuneralRepository(client *firestore.Client) repository.FuneralRepository {
	return &funeralRepository{client: client}
}

func (r *funeralRepository) CreateMembership(ctx context.Context, m *domain.FuneralCoverMembership) error {
	logger.StoreCall("CreateMembership", colFuneralCovers, "user_id", m.UserID)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	m.CreatedOn = now
	m.UpdatedOn = now
	_, err := r.client.Collection(colFuneralCovers).Doc(m.ID).Create(ctx, toFuneralCoverDoc(m))
	logger.StoreResult("CreateMembership", colFuneralCovers, err)
	return err
}

func (r *funeralRepository) GetMembershipByID(ctx context.Context, id string) (*domain.FuneralCoverMembership, error) {
	snap, err := r.client.Collection(colFuneralCovers).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapGetErr(err)
	}
	var d funeralCoverDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromFuneralCoverDoc(snap.Ref.ID, d)
}

func (r *funeralRepository) GetActiveByUser(ctx context.Context, userID string) (*domain.FuneralCoverMembership, error) {
	iter := r.client.Collection(colFuneralCovers).
		Where("user_id", "==", userID).
		Where("status", "==", string(domain.CoverStatusActive)).
		Limit(1).Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var d funeralCoverDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromFuneralCoverDoc(snap.Ref.ID, d)
}

func (r *funeralRepository) UpdateMembership(ctx context.Context, m *domain.FuneralCoverMembership) error {
	logger.StoreCall("UpdateMembership", colFuneralCovers, "membership_id", m.ID)
	m.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(colFuneralCovers).Doc(m.ID).Set(ctx, toFuneralCoverDoc(m))
	logger.StoreResult("UpdateMembership", colFuneralCovers, err)
	return err
}

func (r *funeralRepository) CreateClaim(ctx context.Context, c *domain.FuneralClaim) error {
	logger.StoreCall("CreateClaim", colFuneralClaims, "membership_id", c.MembershipID)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.FiledOn = time.Now().UTC()
	doc := funeralClaimDoc{
		MembershipID:    c.MembershipID,
		UserID:          c.UserID,
		CauseOfDeath:    string(c.CauseOfDeath),
		MemberCategory:  string(c.MemberCategory),
		Status:          string(c.Status),
		RejectionReason: c.RejectionReason,
		FiledOn:         c.FiledOn,
	}
	_, err := r.client.Collection(colFuneralClaims).Doc(c.ID).Create(ctx, doc)
	logger.StoreResult("CreateClaim", colFuneralClaims, err)
	return err
}

func (r *funeralRepository) ListClaimsByUser(ctx context.Context, userID string) ([]domain.FuneralClaim, error) {
	iter := r.client.Collection(colFuneralClaims).Where("user_id", "==", userID).Documents(ctx)
	defer iter.Stop()
	var claims []domain.FuneralClaim
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d funeralClaimDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		claims = append(claims, domain.FuneralClaim{
			ID:              snap.Ref.ID,
			MembershipID:    d.MembershipID,
			UserID:          d.UserID,
			CauseOfDeath:    domain.CauseOfDeath(d.CauseOfDeath),
			MemberCategory:  domain.MemberCategory(d.MemberCategory),
			Status:          domain.ClaimStatus(d.Status),
			RejectionReason: d.RejectionReason,
			FiledOn:         d.FiledOn,
		})
	}
	return claims, nil
}
