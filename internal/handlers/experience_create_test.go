package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/interviewshare/backend/internal/models"
	"github.com/interviewshare/backend/internal/services"
)

func TestCreateExperienceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExperienceCreator(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()
	created := &models.Experience{
		ID:         uuid.New(),
		Title:      "SWE at Google",
		Company:    "Google",
		RoleTitle:  "SWE",
		Content:    "five rounds",
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Author:     "alice@example.com",
		LikesCount: 0,
		LikerIDs:   []uuid.UUID{},
	}

	handler := NewCreateExperienceHandler(mockSvc, mockTokener)

	t.Run("success", func(t *testing.T) {
		authAs(mockTokener, userID)
		mockSvc.EXPECT().
			Create(gomock.Any(), userID, "SWE at Google", "Google", "SWE", "five rounds").
			Return(created, nil)

		body, _ := json.Marshal(CreateExperienceRequest{
			Title:     "SWE at Google",
			Company:   "Google",
			RoleTitle: "SWE",
			Content:   "five rounds",
		})
		req := httptest.NewRequest(http.MethodPost, "/experiences", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got models.Experience
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Author)
		assert.Equal(t, 0, got.LikesCount)
		assert.NotNil(t, got.LikerIDs)
	})

	t.Run("unauthorized", func(t *testing.T) {
		denyAuth(mockTokener)

		req := httptest.NewRequest(http.MethodPost, "/experiences", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		authAs(mockTokener, userID)

		req := httptest.NewRequest(http.MethodPost, "/experiences", bytes.NewReader([]byte(`{invalid`)))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		authAs(mockTokener, userID)
		mockSvc.EXPECT().
			Create(gomock.Any(), userID, "", "", "", "content only").
			Return(nil, services.ErrMissingFields)

		body, _ := json.Marshal(CreateExperienceRequest{Content: "content only"})
		req := httptest.NewRequest(http.MethodPost, "/experiences", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ExperienceErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Missing required fields", resp.Error)
	})
}
