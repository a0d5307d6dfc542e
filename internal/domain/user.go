package domain

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

type User struct {
	ID           string    `json:"id"` // auth provider UID
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	DisplayName  string    `json:"display_name"`
	Role         UserRole  `json:"role"`
	ReferralCode string    `json:"referral_code"`
	ReferredBy   string    `json:"referred_by,omitempty"` // referrer user ID, if signed up via a referral code
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
