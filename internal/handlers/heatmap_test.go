package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/interviewshare/backend/internal/models"
)

func TestHeatmapHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHeatmapReader(ctrl)
	handler := NewHeatmapHandler(mockSvc)

	t.Run("returns sparse per-day counts", func(t *testing.T) {
		mockSvc.EXPECT().
			Heatmap(gomock.Any()).
			Return([]models.DayCount{
				{Date: "2025-08-01", Count: 3},
				{Date: "2025-08-03", Count: 1},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/stats/heatmap", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []models.DayCount
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "2025-08-01", got[0].Date)
		assert.Equal(t, int64(3), got[0].Count)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		mockSvc.EXPECT().
			Heatmap(gomock.Any()).
			Return([]models.DayCount{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/stats/heatmap", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestRootHandler(t *testing.T) {
	handler := NewRootHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RootResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome to InterviewShare API", resp.Message)
	assert.Equal(t, "running", resp.Status)
}
