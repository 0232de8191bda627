package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Unauthenticated("no token"), http.StatusUnauthorized},
		{Forbidden("wrong role"), http.StatusForbidden},
		{errors.New("driver blew up"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, StatusCode(tc.err), "for %v", tc.err)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("approve: %w", Conflict("Application already approved"))
	require.True(t, IsKind(err, KindConflict))
	require.False(t, IsKind(err, KindNotFound))
	require.Equal(t, http.StatusConflict, StatusCode(err))
}
