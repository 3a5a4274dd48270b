package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func authAs(mockTokener *MockTokener, userID uuid.UUID) {
	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("JWT_TOKEN", nil)
	mockTokener.EXPECT().
		GetUserID(gomock.Any(), "JWT_TOKEN").
		Return(userID, nil)
}

func denyAuth(mockTokener *MockTokener) {
	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("no authorization header"))
}

// withURLParam attaches a chi route parameter to the request the way the
// router would during dispatch.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCurrentUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockTokener(ctrl)

	t.Run("resolves the caller", func(t *testing.T) {
		want := uuid.New()
		authAs(mockTokener, want)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		userID, ok := currentUserID(w, req, mockTokener)
		assert.True(t, ok)
		assert.Equal(t, want, userID)
	})

	t.Run("missing token writes 401", func(t *testing.T) {
		denyAuth(mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		userID, ok := currentUserID(w, req, mockTokener)
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, userID)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token writes 401", func(t *testing.T) {
		mockTokener.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("BAD_TOKEN", nil)
		mockTokener.EXPECT().
			GetUserID(gomock.Any(), "BAD_TOKEN").
			Return(uuid.Nil, errors.New("token is invalid"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		_, ok := currentUserID(w, req, mockTokener)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
