package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/interviewshare/backend/internal/services"
)

func TestDeleteExperienceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExperienceDeleter(ctrl)
	mockTokener := NewMockTokener(ctrl)
	handler := NewDeleteExperienceHandler(mockSvc, mockTokener)

	userID := uuid.New()
	experienceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		authAs(mockTokener, userID)
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, experienceID).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/experiences/"+experienceID.String(), nil)
		req = withURLParam(req, "id", experienceID.String())
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp DeleteExperienceResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Experience deleted", resp.Message)
	})

	t.Run("unauthorized", func(t *testing.T) {
		denyAuth(mockTokener)

		req := httptest.NewRequest(http.MethodDelete, "/experiences/"+experienceID.String(), nil)
		req = withURLParam(req, "id", experienceID.String())
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not the author", func(t *testing.T) {
		authAs(mockTokener, userID)
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, experienceID).
			Return(services.ErrNotOwner)

		req := httptest.NewRequest(http.MethodDelete, "/experiences/"+experienceID.String(), nil)
		req = withURLParam(req, "id", experienceID.String())
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		authAs(mockTokener, userID)
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, experienceID).
			Return(services.ErrExperienceNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/experiences/"+experienceID.String(), nil)
		req = withURLParam(req, "id", experienceID.String())
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
