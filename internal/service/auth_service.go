package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/model"
	"github.com/deoc136/eatsopinion-server/internal/session"
)

// UserStore is the credential store contract the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, *int64, error)
	GetByID(ctx context.Context, id int64) (*model.User, *int64, error)
}

// SessionStore is the durable session backing.
type SessionStore interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Delete(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// bcryptCost matches the original registration flow.
const bcryptCost = 10

// dummyHash is compared against when the email is unknown, so the failed
// lookup costs the same as a failed password and the two outcomes stay
// indistinguishable.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("eatsopinion-dummy-credential"), bcryptCost)

// AuthService owns login, logout, registration and session validation.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	tokens   *session.TokenManager
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(users UserStore, sessions SessionStore, tokens *session.TokenManager, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Register creates a new account. A duplicate email surfaces as Conflict
// from the store's unique constraint.
func (s *AuthService) Register(ctx context.Context, u *model.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("AuthService.Register: hash: %w", err)
	}
	u.Password = string(hash)
	if err := s.users.Create(ctx, u); err != nil {
		return fmt.Errorf("AuthService.Register: %w", err)
	}
	return nil
}

// Login verifies the credentials in one constant-shape call and opens a
// durable session. Unknown email and wrong password return the identical
// Unauthorized error, and no session is created in either case. A store
// failure is not a credential problem and passes through as-is.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Identity, error) {
	user, restaurantID, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, apperr.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("AuthService.Login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.ErrUnauthorized
	}

	now := s.now()
	sess := &model.Session{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", nil, fmt.Errorf("AuthService.Login: %w", err)
	}
	token, err := s.tokens.Sign(sess.SessionID, user.UserID, sess.ExpiresAt)
	if err != nil {
		return "", nil, fmt.Errorf("AuthService.Login: %w", err)
	}

	// Piggyback expired-session cleanup on logins.
	if purged, err := s.sessions.PurgeExpired(ctx, now); err == nil && purged > 0 {
		slog.Debug("purged expired sessions", "count", purged)
	}

	return token, s.identity(user, restaurantID), nil
}

// Validate resolves a token to an identity. Any failure (bad signature,
// missing or expired session row) means Anonymous, never an error.
func (s *AuthService) Validate(ctx context.Context, token string) (*model.Identity, bool) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, false
	}
	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, false
	}
	if sess.UserID != claims.UserID || sess.Expired(s.now()) {
		return nil, false
	}
	user, restaurantID, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, false
	}
	return s.identity(user, restaurantID), true
}

// Logout revokes the session behind the token. It is idempotent and
// succeeds even for tokens that were never valid.
func (s *AuthService) Logout(ctx context.Context, token string) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		slog.Warn("session delete failed on logout", "error", err)
	}
}

func (s *AuthService) identity(user *model.User, restaurantID *int64) *model.Identity {
	return &model.Identity{
		UserID:       user.UserID,
		Username:     user.Username,
		Email:        user.UserEmail,
		RestaurantID: restaurantID,
	}
}
