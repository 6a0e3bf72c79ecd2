package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	Store           *Store
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func NewService(store *Store, secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{Store: store, Secret: secret, AccessTokenTTL: accessTTL, RefreshTokenTTL: refreshTTL}
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login authenticates by name and phone, the credential pair the product uses.
func (s *Service) Login(ctx context.Context, name, phone string) (User, TokenPair, error) {
	user, err := s.Store.FindActiveUser(ctx, strings.TrimSpace(name), strings.TrimSpace(phone))
	if errors.Is(err, ErrUserNotFound) {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, TokenPair{}, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return User{}, TokenPair{}, err
	}

	if err := s.Store.UpdateLastLogin(ctx, user.ID); err != nil {
		return User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh rotates the session behind a valid refresh token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (User, TokenPair, error) {
	sessionID, secret, ok := splitRefreshToken(refreshToken)
	if !ok {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}

	userID, hash, expires, err := s.Store.SessionByID(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, TokenPair{}, err
	}
	if time.Now().After(expires) {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err := CheckRefreshToken(hash, secret); err != nil {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}

	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return User{}, TokenPair{}, err
	}
	if !user.Active {
		return User{}, TokenPair{}, ErrInvalidCredentials
	}

	newSessionID := uuid.NewString()
	newSecret, err := randomTokenSecret()
	if err != nil {
		return User{}, TokenPair{}, err
	}
	newHash, err := HashRefreshToken(newSecret)
	if err != nil {
		return User{}, TokenPair{}, err
	}
	if err := s.Store.RotateSession(ctx, sessionID, newSessionID, user.ID, newHash, time.Now().Add(s.RefreshTokenTTL)); err != nil {
		return User{}, TokenPair{}, err
	}

	access, err := s.accessToken(user)
	if err != nil {
		return User{}, TokenPair{}, err
	}
	return user, TokenPair{AccessToken: access, RefreshToken: joinRefreshToken(newSessionID, newSecret)}, nil
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	sessionID, _, ok := splitRefreshToken(refreshToken)
	if !ok {
		return nil
	}
	return s.Store.RevokeSession(ctx, sessionID)
}

func (s *Service) issueTokens(ctx context.Context, user User) (TokenPair, error) {
	access, err := s.accessToken(user)
	if err != nil {
		return TokenPair{}, err
	}

	sessionID := uuid.NewString()
	secret, err := randomTokenSecret()
	if err != nil {
		return TokenPair{}, err
	}
	hash, err := HashRefreshToken(secret)
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.Store.CreateSession(ctx, sessionID, user.ID, hash, time.Now().Add(s.RefreshTokenTTL)); err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: joinRefreshToken(sessionID, secret)}, nil
}

func (s *Service) accessToken(user User) (string, error) {
	return GenerateToken(s.Secret, Claims{
		UserID:     user.ID,
		Name:       user.Name,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	}, s.AccessTokenTTL)
}

func randomTokenSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func joinRefreshToken(sessionID, secret string) string {
	return fmt.Sprintf("%s.%s", sessionID, secret)
}

func splitRefreshToken(token string) (sessionID, secret string, ok bool) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
