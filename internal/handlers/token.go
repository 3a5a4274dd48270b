package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Tokener resolves the calling user from the bearer token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// currentUserID resolves the caller's user id from the request. When
// resolution fails it writes 401 and reports false.
func currentUserID(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	userID, err := tokener.GetUserID(ctx, tokenString)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	return userID, true
}
