package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FuneralPlanID string

const (
	FuneralPlanBasic    FuneralPlanID = "BASIC"
	FuneralPlanFamily   FuneralPlanID = "FAMILY"
	FuneralPlanExtended FuneralPlanID = "EXTENDED"
)

type MemberCategory string

const (
	MemberCategoryMain     MemberCategory = "MAIN_MEMBER"
	MemberCategorySpouse   MemberCategory = "SPOUSE"
	MemberCategoryChildren MemberCategory = "CHILDREN"
	MemberCategoryExtended MemberCategory = "EXTENDED"
)

// FuneralPlan is a fixed plan definition: monthly base price, cover amount
// per member category and caps on countable dependents.
type FuneralPlan struct {
	ID                    FuneralPlanID                      `json:"id"`
	Name                  string                             `json:"name"`
	MonthlyPrice          decimal.Decimal                    `json:"monthly_price"`
	Coverage              map[MemberCategory]decimal.Decimal `json:"coverage"`
	MaxChildren           int                                `json:"max_children"`
	MaxExtended           int                                `json:"max_extended"`
	RequiresFamilyDetails bool                               `json:"requires_family_details"`
}

type FamilyDetails struct {
	SpouseName      string   `json:"spouse_name,omitempty"`
	Children        []string `json:"children,omitempty"`
	ExtendedMembers []string `json:"extended_members,omitempty"`
}

type CoverStatus string

const (
	CoverStatusActive    CoverStatus = "ACTIVE"
	CoverStatusCancelled CoverStatus = "CANCELLED"
)

type FuneralCoverMembership struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	PlanID             FuneralPlanID   `json:"plan_id"`
	StartDate          time.Time       `json:"start_date"`
	AdditionalBenefits []string        `json:"additional_benefits"`
	MonthlyPremium     decimal.Decimal `json:"monthly_premium"`
	Family             *FamilyDetails  `json:"family,omitempty"`
	Status             CoverStatus     `json:"status"`
	CreatedOn          time.Time       `json:"created_on"`
	UpdatedOn          time.Time       `json:"updated_on"`
}

type CauseOfDeath string

const (
	CauseNaturalDeath    CauseOfDeath = "NATURAL_DEATH"
	CauseAccidentalDeath CauseOfDeath = "ACCIDENTAL_DEATH"
	CauseSuicide         CauseOfDeath = "SUICIDE"
)

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusRejected ClaimStatus = "REJECTED"
	ClaimStatusApproved ClaimStatus = "APPROVED"
)

type FuneralClaim struct {
	ID              string         `json:"id"`
	MembershipID    string         `json:"membership_id"`
	UserID          string         `json:"user_id"`
	CauseOfDeath    CauseOfDeath   `json:"cause_of_death"`
	MemberCategory  MemberCategory `json:"member_category"`
	Status          ClaimStatus    `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	FiledOn         time.Time      `json:"filed_on"`
}
