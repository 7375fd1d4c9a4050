package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := func() SignupRequest {
		return SignupRequest{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "Sup3r!pass",
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
	})

	t.Run("trims name and email", func(t *testing.T) {
		req := valid()
		req.Name = "  Ada Lovelace  "
		req.Email = "  ada@example.com  "
		require.NoError(t, req.Validate())
		assert.Equal(t, "Ada Lovelace", req.Name)
		assert.Equal(t, "ada@example.com", req.Email)
	})

	t.Run("name bounds", func(t *testing.T) {
		req := valid()
		req.Name = "A"
		assert.Error(t, req.Validate())

		req = valid()
		req.Name = strings.Repeat("a", 31)
		assert.Error(t, req.Validate())
	})

	t.Run("email rules", func(t *testing.T) {
		req := valid()
		req.Email = ""
		assert.Error(t, req.Validate())

		req = valid()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())

		req = valid()
		req.Email = strings.Repeat("a", 45) + "@example.com"
		assert.Error(t, req.Validate())
	})
}

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sup3r!pass", false},
		{"valid with all symbols", "Aa1!@#$%^&*", false},
		{"minimum length", "Aa1!bcde", false},
		{"maximum length", "Aa1!" + strings.Repeat("x", 14), false},
		{"too short", "Aa1!bcd", true},
		{"too long", "Aa1!" + strings.Repeat("x", 15), true},
		{"missing lowercase", "SUP3R!PASS", true},
		{"missing uppercase", "sup3r!pass", true},
		{"missing digit", "Super!pass", true},
		{"missing symbol", "Sup3rpass", true},
		{"symbol outside the fixed set", "Sup3r_pass", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SignupRequest{Name: "Ada Lovelace", Email: "ada@example.com", Password: tt.password}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSigninRequest_Validate(t *testing.T) {
	req := SigninRequest{Email: "ada@example.com", Password: "Sup3r!pass"}
	require.NoError(t, req.Validate())

	// The password policy applies on signin too: a password that could never
	// have signed up fails before any store lookup.
	req = SigninRequest{Email: "ada@example.com", Password: "short"}
	assert.Error(t, req.Validate())
}
