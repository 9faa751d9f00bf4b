package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velsky/animelist-api/internal/models"
	"github.com/velsky/animelist-api/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockLoginer)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "successful login",
			body: `{"email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret123").
					Return("token123", &models.UserDB{
						UserID:   userID,
						Username: "alice",
						Email:    "alice@example.com",
					}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Login successful",
		},
		{
			name:            "invalid JSON",
			body:            `{"email":`,
			mockSetup:       func(m *MockLoginer) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "bad credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid email or password",
		},
		{
			name: "internal error",
			body: `{"email":"alice@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret123").
					Return("", nil, errors.New("db error"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMessage, body["message"])

			if tt.expectedStatus == http.StatusOK {
				var resp AuthResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "token123", resp.Token)
				assert.Equal(t, userID, resp.User.ID)
			}
		})
	}
}
