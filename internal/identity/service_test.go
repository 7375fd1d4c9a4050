package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "coursebay/pkg/domain-errors"
)

type stubIssuer struct {
	token   string
	subject string
}

func (s *stubIssuer) Issue(subjectID string, _ time.Time) (string, error) {
	s.subject = subjectID
	return s.token, nil
}

func newTestService() (*Service, *InMemoryAdminStore, *InMemoryUserStore, *stubIssuer, *stubIssuer) {
	admins := NewInMemoryAdminStore()
	users := NewInMemoryUserStore()
	adminIssuer := &stubIssuer{token: "admin-token"}
	userIssuer := &stubIssuer{token: "user-token"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(admins, users, adminIssuer, userIssuer, logger), admins, users, adminIssuer, userIssuer
}

func TestSignupAdmin(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	admin, err := svc.SignupAdmin(ctx, "Ada Lovelace", "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)
	assert.False(t, admin.ID.IsZero())
	assert.Equal(t, "Ada Lovelace", admin.Name)

	// The hash is stored, never the password.
	assert.NotEqual(t, "Sup3r!pass", admin.PasswordHash)
	assert.NotEmpty(t, admin.PasswordHash)
}

func TestSignupAdmin_DuplicateEmail(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SignupAdmin(ctx, "Ada Lovelace", "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)

	_, err = svc.SignupAdmin(ctx, "Someone Else", "ada@example.com", "Oth3r!pass")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))

	// Email comparison is case-insensitive.
	_, err = svc.SignupAdmin(ctx, "Someone Else", "ADA@example.com", "Oth3r!pass")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}

func TestSigninAdmin(t *testing.T) {
	svc, _, _, adminIssuer, _ := newTestService()
	ctx := context.Background()

	admin, err := svc.SignupAdmin(ctx, "Ada Lovelace", "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)

	tokenString, err := svc.SigninAdmin(ctx, "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)
	assert.Equal(t, "admin-token", tokenString)
	assert.Equal(t, admin.ID.String(), adminIssuer.subject)
}

func TestSigninAdmin_InvalidCredentials(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SignupAdmin(ctx, "Ada Lovelace", "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, errWrongPass := svc.SigninAdmin(ctx, "ada@example.com", "Wr0ng!pass")
	require.Error(t, errWrongPass)
	assert.True(t, dErrors.HasCode(errWrongPass, dErrors.CodeUnauthorized))

	_, errUnknown := svc.SigninAdmin(ctx, "nobody@example.com", "Sup3r!pass")
	require.Error(t, errUnknown)
	assert.True(t, dErrors.HasCode(errUnknown, dErrors.CodeUnauthorized))

	assert.Equal(t, dErrors.MessageOf(errWrongPass), dErrors.MessageOf(errUnknown))
}

func TestIdentitySpacesAreDisjoint(t *testing.T) {
	svc, _, _, _, userIssuer := newTestService()
	ctx := context.Background()

	// The same email can exist as both an admin and a user.
	_, err := svc.SignupAdmin(ctx, "Ada Lovelace", "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)

	user, err := svc.SignupUser(ctx, "Ada Lovelace", "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)

	tokenString, err := svc.SigninUser(ctx, "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)
	assert.Equal(t, "user-token", tokenString)
	assert.Equal(t, user.ID.String(), userIssuer.subject)
}

func TestSignupUser_DuplicateEmail(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SignupUser(ctx, "Ada Lovelace", "ada@example.com", "Sup3r!pass")
	require.NoError(t, err)

	_, err = svc.SignupUser(ctx, "Someone Else", "ada@example.com", "Oth3r!pass")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}
