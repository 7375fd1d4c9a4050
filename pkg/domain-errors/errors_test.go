package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesChain(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := Wrap(base, CodeInternal, "failed to reach store")

	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, base))
	assert.True(t, HasCode(wrapped, CodeInternal))
}

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestHasCode_Nested(t *testing.T) {
	inner := New(CodeNotFound, "course not found")
	outer := Wrap(inner, CodeInternal, "lookup failed")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(outer, CodeForbidden))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeConflict, CodeOf(New(CodeConflict, "duplicate")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("uncoded")))

	// The outermost code wins when errors are re-wrapped across layers.
	inner := New(CodeNotFound, "missing")
	outer := Wrap(inner, CodeInternal, "lookup failed")
	assert.Equal(t, CodeInternal, CodeOf(outer))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "duplicate", MessageOf(New(CodeConflict, "duplicate")))
	assert.Equal(t, "", MessageOf(errors.New("uncoded")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestErrorString(t *testing.T) {
	plain := New(CodeNotFound, "course not found")
	assert.Equal(t, "not_found: course not found", plain.Error())

	wrapped := Wrap(fmt.Errorf("row missing"), CodeNotFound, "course not found")
	assert.Equal(t, "not_found: course not found: row missing", wrapped.Error())
}
