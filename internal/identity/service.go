package identity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	id "coursebay/pkg/domain"
	dErrors "coursebay/pkg/domain-errors"
	"coursebay/pkg/platform/sentinel"
	"coursebay/pkg/requestcontext"
)

// TokenIssuer signs an identity assertion for a subject. The service holds
// one issuer per role space.
type TokenIssuer interface {
	Issue(subjectID string, now time.Time) (string, error)
}

// Service implements signup and signin for both identity spaces. The two
// flows are intentionally parallel but never share stores or signing keys.
type Service struct {
	admins      AdminStore
	users       UserStore
	adminTokens TokenIssuer
	userTokens  TokenIssuer
	logger      *slog.Logger
}

// NewService wires the identity service.
func NewService(admins AdminStore, users UserStore, adminTokens, userTokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		admins:      admins,
		users:       users,
		adminTokens: adminTokens,
		userTokens:  userTokens,
		logger:      logger,
	}
}

// SignupAdmin registers a new admin account. The email must be unused within
// the admin space; the password arrives pre-validated by the boundary and is
// stored as a bcrypt hash only.
func (s *Service) SignupAdmin(ctx context.Context, name, email, password string) (*Admin, error) {
	if _, err := s.admins.FindByEmail(ctx, email); err == nil {
		return nil, dErrors.New(dErrors.CodeForbidden, "admin already exists")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check admin email")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		ID:           id.NewAdminID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeForbidden, "admin already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create admin")
	}

	s.logger.InfoContext(ctx, "admin signed up",
		"admin_id", admin.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return admin, nil
}

// SigninAdmin checks credentials and issues an admin token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) SigninAdmin(ctx context.Context, email, password string) (string, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up admin")
	}
	if err := VerifyPassword(password, admin.PasswordHash); err != nil {
		return "", err
	}

	tokenString, err := s.adminTokens.Issue(admin.ID.String(), requestcontext.Now(ctx))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// SignupUser registers a new user account in the user identity space.
func (s *Service) SignupUser(ctx context.Context, name, email, password string) (*User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, dErrors.New(dErrors.CodeForbidden, "user already exists")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check user email")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           id.NewUserID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeForbidden, "user already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.logger.InfoContext(ctx, "user signed up",
		"user_id", user.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return user, nil
}

// SigninUser checks credentials and issues a user token.
func (s *Service) SigninUser(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}
	if err := VerifyPassword(password, user.PasswordHash); err != nil {
		return "", err
	}

	tokenString, err := s.userTokens.Issue(user.ID.String(), requestcontext.Now(ctx))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
