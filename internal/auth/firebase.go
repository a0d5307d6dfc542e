package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"stokvel-backend/internal/logger"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// FirebaseProvider implements Provider on Firebase Authentication: the Admin
// SDK for user management and token verification, and the Identity Toolkit
// REST API for password sign-in (the Admin SDK has no password grant).
type FirebaseProvider struct {
	client    *fbauth.Client
	webAPIKey string
	httpc     *http.Client
}

// NewFirebaseProvider initializes the Firebase app and its auth client.
// credentialsFile may be empty, in which case application default
// credentials are used.
func NewFirebaseProvider(ctx context.Context, projectID, credentialsFile, webAPIKey string) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &FirebaseProvider{
		client:    client,
		webAPIKey: webAPIKey,
		httpc:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (p *FirebaseProvider) Register(ctx context.Context, email, password, displayName string) (*Identity, error) {
	logger.ExternalServiceCall("firebase-auth", "CreateUser", "email", email)

	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := p.client.CreateUser(ctx, params)
	logger.ExternalServiceResult("firebase-auth", "CreateUser", err)
	if err != nil {
		return nil, classifyAdminError(err)
	}

	return &Identity{UID: record.UID, Email: record.Email, DisplayName: record.DisplayName}, nil
}

// signInRequest / signInResponse mirror the Identity Toolkit wire shapes.
type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	logger.ExternalServiceCall("identity-toolkit", "signInWithPassword", "email", email)

	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, &Error{Kind: KindNetworkError, Err: err}
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, p.webAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindNetworkError, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpc.Do(req)
	if err != nil {
		logger.ExternalServiceResult("identity-toolkit", "signInWithPassword", err)
		return nil, &Error{Kind: KindNetworkError, Err: err}
	}
	defer resp.Body.Close()

	var parsed signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &Error{Kind: KindNetworkError, Err: err}
	}

	if parsed.Error != nil {
		kindErr := classifyToolkitMessage(parsed.Error.Message)
		logger.ExternalServiceResult("identity-toolkit", "signInWithPassword", kindErr)
		return nil, kindErr
	}
	logger.ExternalServiceResult("identity-toolkit", "signInWithPassword", nil)

	return &Identity{UID: parsed.LocalID, Email: parsed.Email, DisplayName: parsed.DisplayName}, nil
}

func (p *FirebaseProvider) SignOut(ctx context.Context, uid string) error {
	logger.ExternalServiceCall("firebase-auth", "RevokeRefreshTokens", "uid", uid)
	err := p.client.RevokeRefreshTokens(ctx, uid)
	logger.ExternalServiceResult("firebase-auth", "RevokeRefreshTokens", err)
	if err != nil {
		return classifyAdminError(err)
	}
	return nil
}

func (p *FirebaseProvider) SendPasswordReset(ctx context.Context, email string) (string, error) {
	logger.ExternalServiceCall("firebase-auth", "PasswordResetLink", "email", email)
	link, err := p.client.PasswordResetLink(ctx, email)
	logger.ExternalServiceResult("firebase-auth", "PasswordResetLink", err)
	if err != nil {
		return "", classifyAdminError(err)
	}
	return link, nil
}

func (p *FirebaseProvider) CurrentUser(ctx context.Context, idToken string) (*Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, &Error{Kind: KindUserNotFound, Err: err}
	}
	record, err := p.client.GetUser(ctx, token.UID)
	if err != nil {
		return nil, classifyAdminError(err)
	}
	return &Identity{UID: record.UID, Email: record.Email, DisplayName: record.DisplayName}, nil
}

// classifyAdminError maps Admin SDK failures onto error kinds.
func classifyAdminError(err error) error {
	switch {
	case fbauth.IsEmailAlreadyExists(err):
		return &Error{Kind: KindEmailInUse, Err: err}
	case fbauth.IsUserNotFound(err):
		return &Error{Kind: KindUserNotFound, Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return &Error{Kind: KindInvalidEmail, Err: err}
	case strings.Contains(msg, "password"):
		return &Error{Kind: KindWeakPassword, Err: err}
	default:
		return &Error{Kind: KindNetworkError, Err: err}
	}
}

// classifyToolkitMessage maps Identity Toolkit error codes onto error kinds.
// Codes may carry suffixes (e.g. "TOO_MANY_ATTEMPTS_TRY_LATER : ...").
func classifyToolkitMessage(message string) error {
	code := message
	if idx := strings.IndexAny(code, " :"); idx > 0 {
		code = code[:idx]
	}

	kind := KindNetworkError
	switch code {
	case "EMAIL_NOT_FOUND":
		kind = KindUserNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		kind = KindWrongPassword
	case "USER_DISABLED":
		kind = KindUserDisabled
	case "INVALID_EMAIL", "MISSING_EMAIL":
		kind = KindInvalidEmail
	case "EMAIL_EXISTS":
		kind = KindEmailInUse
	case "WEAK_PASSWORD", "MISSING_PASSWORD":
		kind = KindWeakPassword
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		kind = KindTooManyRequests
	case "CREDENTIAL_TOO_OLD_LOGIN_AGAIN", "TOKEN_EXPIRED":
		kind = KindRequiresRecentLogin
	}
	return &Error{Kind: kind, Err: fmt.Errorf("identity toolkit: %s", message)}
}
