package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/models"
	"github.com/velsky/animelist-api/internal/services"
)

func TestVerifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name            string
		withUserID      bool
		mockSetup       func(m *MockVerifier)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:       "token holder resolved",
			withUserID: true,
			mockSetup: func(m *MockVerifier) {
				m.EXPECT().
					Verify(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "no user id in context",
			withUserID:      false,
			mockSetup:       func(m *MockVerifier) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:       "user gone",
			withUserID: true,
			mockSetup: func(m *MockVerifier) {
				m.EXPECT().
					Verify(gomock.Any(), userID).
					Return(nil, services.ErrUserDoesNotExist)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "User not found",
		},
		{
			name:       "internal error",
			withUserID: true,
			mockSetup: func(m *MockVerifier) {
				m.EXPECT().
					Verify(gomock.Any(), userID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockVerifier(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewVerifyHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
			if tt.withUserID {
				req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp VerifyResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, userID, resp.User.ID)
				assert.Equal(t, "alice", resp.User.Username)
				return
			}

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}
