package auth

import (
	"context"
	"fmt"
)

// ErrorKind classifies auth provider failures the way the rest of the
// platform understands them. Handlers translate kinds into user-facing
// messages; none of them are automatically retryable.
type ErrorKind string

const (
	KindEmailInUse          ErrorKind = "EMAIL_IN_USE"
	KindInvalidEmail        ErrorKind = "INVALID_EMAIL"
	KindUserDisabled        ErrorKind = "USER_DISABLED"
	KindUserNotFound        ErrorKind = "USER_NOT_FOUND"
	KindWrongPassword       ErrorKind = "WRONG_PASSWORD"
	KindWeakPassword        ErrorKind = "WEAK_PASSWORD"
	KindTooManyRequests     ErrorKind = "TOO_MANY_REQUESTS"
	KindNetworkError        ErrorKind = "NETWORK_ERROR"
	KindRequiresRecentLogin ErrorKind = "REQUIRES_RECENT_LOGIN"
)

// Error is a provider failure tagged with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the error kind, defaulting to NetworkError for anything
// the provider did not classify.
func KindOf(err error) ErrorKind {
	if authErr, ok := err.(*Error); ok {
		return authErr.Kind
	}
	return KindNetworkError
}

// Identity is the provider's view of a signed-in user.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// Provider is the capability surface of the external auth service. The
// platform never sees passwords beyond these calls and never stores them.
type Provider interface {
	Register(ctx context.Context, email, password, displayName string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignOut(ctx context.Context, uid string) error
	SendPasswordReset(ctx context.Context, email string) (string, error) // returns the reset link
	CurrentUser(ctx context.Context, idToken string) (*Identity, error)
}
