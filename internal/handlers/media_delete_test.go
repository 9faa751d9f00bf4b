package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/services"
)

func TestMediaDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mediaID := uuid.New()

	tests := []struct {
		name            string
		target          string
		withUserID      bool
		mockSetup       func(m *MockMediaDeleter)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:       "successful delete",
			target:     "/api/media/" + mediaID.String(),
			withUserID: true,
			mockSetup: func(m *MockMediaDeleter) {
				m.EXPECT().Delete(gomock.Any(), mediaID, userID).Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Deleted successfully",
		},
		{
			name:            "malformed id",
			target:          "/api/media/not-a-uuid",
			withUserID:      true,
			mockSetup:       func(m *MockMediaDeleter) {},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Media not found or unauthorized",
		},
		{
			name:       "scoped miss",
			target:     "/api/media/" + mediaID.String(),
			withUserID: true,
			mockSetup: func(m *MockMediaDeleter) {
				m.EXPECT().Delete(gomock.Any(), mediaID, userID).Return(services.ErrMediaNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Media not found or unauthorized",
		},
		{
			name:            "no user id in context",
			target:          "/api/media/" + mediaID.String(),
			withUserID:      false,
			mockSetup:       func(m *MockMediaDeleter) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token is not valid",
		},
		{
			name:       "internal error",
			target:     "/api/media/" + mediaID.String(),
			withUserID: true,
			mockSetup: func(m *MockMediaDeleter) {
				m.EXPECT().Delete(gomock.Any(), mediaID, userID).Return(errors.New("db error"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMediaDeleter(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Delete("/api/media/{id}", NewMediaDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			if tt.withUserID {
				req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedMessage)
		})
	}
}
