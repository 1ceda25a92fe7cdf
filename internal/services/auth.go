package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/sbilibin2017/gw-parent-profile/internal/jwt"
	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
	"github.com/sbilibin2017/gw-parent-profile/internal/passwords"
	"github.com/sbilibin2017/gw-parent-profile/internal/repositories"
)

// ParentReader defines read-only operations for parents.
type ParentReader interface {
	GetByID(ctx context.Context, id int64) (*models.Parent, error)
	GetByEmail(ctx context.Context, email string) (*models.Parent, error)
	GetWithChildren(ctx context.Context, id int64) (*models.ParentWithChildren, error)
}

// ParentWriter defines write operations for parents.
type ParentWriter interface {
	Create(ctx context.Context, email, hashedPassword string) (*models.Parent, error)
	Activate(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, parent *models.Parent) (*models.Parent, error)
}

// TokenManager issues and decodes typed bearer tokens.
type TokenManager interface {
	Generate(ctx context.Context, email string, tokenType jwt.TokenType) (string, error)
	GetClaims(ctx context.Context, tokenString string, expected jwt.TokenType) (*jwt.Claims, error)
}

// Notifier queues best-effort emails. Callers never learn the delivery outcome.
type Notifier interface {
	EnqueueActivationEmail(ctx context.Context, email, token string)
	EnqueueNewChildAlert(ctx context.Context, parentID int64, childName string)
}

// AuthService handles registration, activation, login and caller identity.
type AuthService struct {
	reader   ParentReader
	writer   ParentWriter
	tokens   TokenManager
	notifier Notifier
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader ParentReader, writer ParentWriter, tokens TokenManager, notifier Notifier) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Register creates an inactive parent and queues its activation email.
func (svc *AuthService) Register(ctx context.Context, email, password string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordRequired
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check parent exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Warnw("parent already exists", "email", email)
		return ErrEmailAlreadyRegistered
	}

	hashedPassword, err := passwords.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	parent, err := svc.writer.Create(ctx, email, hashedPassword)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrEmailAlreadyRegistered
		}
		logger.Log.Errorw("failed to save parent", "err", err)
		return err
	}

	token, err := svc.tokens.Generate(ctx, email, jwt.TokenTypeActivation)
	if err != nil {
		logger.Log.Errorw("failed to generate activation token", "err", err)
		return err
	}

	svc.notifier.EnqueueActivationEmail(ctx, email, token)
	logger.Log.Infow("parent registered", "parent_id", parent.ID)
	return nil
}

// Activate marks the parent named by an activation token as active.
func (svc *AuthService) Activate(ctx context.Context, token string) error {
	claims, err := svc.tokens.GetClaims(ctx, token, jwt.TokenTypeActivation)
	if err != nil {
		logger.Log.Warnw("activation token rejected", "err", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrInvalidToken
	}

	parent, err := svc.reader.GetByEmail(ctx, claims.Email)
	if err != nil {
		logger.Log.Errorw("failed to get parent", "err", err)
		return err
	}
	if parent == nil {
		return ErrParentNotFound
	}
	if parent.IsActive {
		return ErrAlreadyActive
	}

	activated, err := svc.writer.Activate(ctx, parent.ID)
	if err != nil {
		logger.Log.Errorw("failed to activate parent", "parent_id", parent.ID, "err", err)
		return err
	}
	if !activated {
		return ErrAlreadyActive
	}

	logger.Log.Infow("parent activated", "parent_id", parent.ID)
	return nil
}

// ResendVerification issues a fresh activation token for a pending parent.
func (svc *AuthService) ResendVerification(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	parent, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get parent", "err", err)
		return err
	}
	if parent == nil {
		return ErrParentNotFound
	}
	if parent.IsActive {
		return ErrAlreadyVerified
	}

	token, err := svc.tokens.Generate(ctx, email, jwt.TokenTypeActivation)
	if err != nil {
		logger.Log.Errorw("failed to generate activation token", "err", err)
		return err
	}

	svc.notifier.EnqueueActivationEmail(ctx, email, token)
	return nil
}

// Login authenticates an active parent and returns a session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	parent, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get parent", "err", err)
		return "", err
	}
	if parent == nil || !passwords.Verify(password, parent.HashedPassword) {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}
	if !parent.IsActive {
		return "", ErrAccountNotActivated
	}

	token, err := svc.tokens.Generate(ctx, email, jwt.TokenTypeSession)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// CurrentParentID resolves a session token to the id of its parent.
func (svc *AuthService) CurrentParentID(ctx context.Context, token string) (int64, error) {
	claims, err := svc.tokens.GetClaims(ctx, token, jwt.TokenTypeSession)
	if err != nil {
		logger.Log.Warnw("session token rejected", "err", err)
		return 0, ErrUnauthorized
	}

	parent, err := svc.reader.GetByEmail(ctx, claims.Email)
	if err != nil {
		logger.Log.Errorw("failed to get parent", "err", err)
		return 0, err
	}
	if parent == nil {
		return 0, ErrUnauthorized
	}

	return parent.ID, nil
}

func normalizeEmail(s string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e {
		return "", ErrInvalidEmail
	}
	return e, nil
}
