package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/models"
)

func TestMediaListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		withUserID     bool
		mockSetup      func(m *MockMediaLister)
		expectedStatus int
		expectedLen    int
	}{
		{
			name:       "two records",
			withUserID: true,
			mockSetup: func(m *MockMediaLister) {
				m.EXPECT().List(gomock.Any(), userID).Return([]models.MediaDB{
					{MediaID: uuid.New(), UserID: userID, Title: "Berserk"},
					{MediaID: uuid.New(), UserID: userID, Title: "Monster"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:       "empty list",
			withUserID: true,
			mockSetup: func(m *MockMediaLister) {
				m.EXPECT().List(gomock.Any(), userID).Return([]models.MediaDB{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "no user id in context",
			withUserID:     false,
			mockSetup:      func(m *MockMediaLister) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "internal error",
			withUserID: true,
			mockSetup: func(m *MockMediaLister) {
				m.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMediaLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewMediaListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/media", nil)
			if tt.withUserID {
				req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var items []models.MediaDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
				assert.Len(t, items, tt.expectedLen)
			}
		})
	}
}

func TestMediaListByTypeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		mediaType      string
		mockSetup      func(m *MockMediaLister)
		expectedStatus int
		expectedLen    int
	}{
		{
			name:      "manga records",
			mediaType: "manga",
			mockSetup: func(m *MockMediaLister) {
				m.EXPECT().ListByType(gomock.Any(), userID, "manga").Return([]models.MediaDB{
					{MediaID: uuid.New(), UserID: userID, Title: "Berserk", Type: models.MediaTypeManga},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:      "unknown type yields empty list",
			mediaType: "podcast",
			mockSetup: func(m *MockMediaLister) {
				m.EXPECT().ListByType(gomock.Any(), userID, "podcast").Return([]models.MediaDB{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:      "internal error",
			mediaType: "anime",
			mockSetup: func(m *MockMediaLister) {
				m.EXPECT().ListByType(gomock.Any(), userID, "anime").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMediaLister(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Get("/api/media/type/{type}", NewMediaListByTypeHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/media/type/"+tt.mediaType, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var items []models.MediaDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
				assert.Len(t, items, tt.expectedLen)
			}
		})
	}
}
