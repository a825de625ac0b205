package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"school-api/internal/model"
	"school-api/pkg/apierror"
)

const (
	TokenType = "bearer"

	msgInvalidCredentials = "invalid credentials"
	msgInvalidToken       = "invalid or expired token"
)

type CredentialStore interface {
	FindActiveByUsername(ctx context.Context, username string) (model.Credential, error)
	FindByUsername(ctx context.Context, username string) (model.Credential, error)
}

// AuthService exchanges credentials for tokens and tokens for identities.
// It keeps no per-session state; tokens stay valid until they expire.
type AuthService struct {
	codec       *TokenCodec
	hasher      PasswordHasher
	credentials CredentialStore
	// dummyHash is compared on unknown usernames so both failure paths
	// pay for one hash comparison.
	dummyHash string
}

func NewAuthService(codec *TokenCodec, hasher PasswordHasher, credentials CredentialStore) (*AuthService, error) {
	if codec == nil || hasher == nil || credentials == nil {
		return nil, errors.New("auth service requires a codec, a hasher and a credential store")
	}

	dummyHash, err := hasher.Hash("school-api-unknown-user")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &AuthService{codec: codec, hasher: hasher, credentials: credentials, dummyHash: dummyHash}, nil
}

// Authenticate returns the same Unauthorized error for an unknown username and
// for a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, username string, password string) (model.TokenResponse, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return model.TokenResponse{}, apierror.BadRequest("username and password are required", "")
	}

	credential, err := s.credentials.FindActiveByUsername(ctx, username)
	if apierror.HasCode(err, apierror.CodeNotFound) {
		_ = s.hasher.Compare(s.dummyHash, password)
		return model.TokenResponse{}, apierror.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return model.TokenResponse{}, err
	}

	if err := s.hasher.Compare(credential.PasswordHash, password); err != nil {
		return model.TokenResponse{}, apierror.Unauthorized(msgInvalidCredentials)
	}

	token, _, err := s.codec.Sign(credential.Username)
	if err != nil {
		return model.TokenResponse{}, fmt.Errorf("issue token for %s: %w", credential.Username, err)
	}

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresIn:   int64(s.codec.TTL().Seconds()),
		UserInfo:    credential.Identity(),
	}, nil
}

// Authorize does not consult the active flag, so a credential deactivated
// after login keeps working until its token expires.
func (s *AuthService) Authorize(ctx context.Context, token string) (model.Identity, error) {
	claim, err := s.codec.Verify(token)
	if err != nil {
		return model.Identity{}, apierror.Unauthorized(msgInvalidToken)
	}

	credential, err := s.credentials.FindByUsername(ctx, claim.Subject)
	if err != nil {
		return model.Identity{}, err
	}

	return credential.Identity(), nil
}
