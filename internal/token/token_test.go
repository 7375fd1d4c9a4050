package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "coursebay/pkg/domain-errors"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", RoleAdmin, time.Hour)

	signed, err := svc.Issue("a1b2c3d4e5f6a1b2c3d4e5f6", time.Now())
	require.NoError(t, err)

	subject, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4e5f6a1b2c3d4e5f6", subject)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("test-secret", RoleUser, time.Hour)

	signed, err := svc.Issue("subject", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := NewService("secret-one", RoleAdmin, time.Hour)
	verifier := NewService("secret-two", RoleAdmin, time.Hour)

	signed, err := issuer.Issue("subject", time.Now())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestVerify_RoleMismatchIsForbidden(t *testing.T) {
	// Same secret on both sides isolates the role check: the signature is
	// valid, only the role claim differs.
	adminSvc := NewService("shared-secret", RoleAdmin, time.Hour)
	userSvc := NewService("shared-secret", RoleUser, time.Hour)

	signed, err := adminSvc.Issue("subject", time.Now())
	require.NoError(t, err)

	_, err = userSvc.Verify(signed)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("test-secret", RoleAdmin, time.Hour)

	for _, input := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := svc.Verify(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	svc := NewService("test-secret", RoleAdmin, time.Hour)

	signed, err := svc.Issue("subject", time.Now())
	require.NoError(t, err)

	tampered := signed[:len(signed)-4] + "AAAA"
	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
