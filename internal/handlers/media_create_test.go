package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/models"
	"github.com/velsky/animelist-api/internal/services"
	"github.com/velsky/animelist-api/internal/uploads"
)

// newMultipartRequest builds a multipart form request with the given fields
// and an optional image part with an explicit content type.
func newMultipartRequest(t *testing.T, method, target string, fields map[string]string, imageName, imageType string, imageBody []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, val := range fields {
		require.NoError(t, mw.WriteField(key, val))
	}

	if imageName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, imageName))
		header.Set("Content-Type", imageType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(imageBody)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestMediaCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("create without image", func(t *testing.T) {
		mockSvc := NewMockMediaCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), userID, gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ any, _ uuid.UUID, in models.MediaInput, _ *models.Upload) (*models.MediaDB, error) {
				assert.Equal(t, "Berserk", in.Title)
				assert.Equal(t, "manga", in.Type)
				assert.Equal(t, "reading", in.Status)
				require.NotNil(t, in.Rating)
				assert.Equal(t, 9.5, *in.Rating)
				assert.Equal(t, 12, in.EpisodesWatched)
				assert.Nil(t, in.Notes)
				return &models.MediaDB{MediaID: uuid.New(), UserID: userID, Title: in.Title, Type: in.Type}, nil
			})

		handler := NewMediaCreateHandler(mockSvc)

		req := newMultipartRequest(t, http.MethodPost, "/api/media", map[string]string{
			"title":            "Berserk",
			"type":             "manga",
			"status":           "reading",
			"rating":           "9.5",
			"episodes_watched": "12",
		}, "", "", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp MediaCreateResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Added Successfully", resp.Message)
		require.NotNil(t, resp.NewMedia)
		assert.Equal(t, "Berserk", resp.NewMedia.Title)
	})

	t.Run("create with image", func(t *testing.T) {
		mockSvc := NewMockMediaCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in models.MediaInput, upload *models.Upload) (*models.MediaDB, error) {
				require.NotNil(t, upload)
				assert.Equal(t, "cover.png", upload.Filename)
				assert.Equal(t, "image/png", upload.ContentType)

				body, err := io.ReadAll(upload.Reader)
				require.NoError(t, err)
				assert.Equal(t, []byte("fake image bytes"), body)

				return &models.MediaDB{MediaID: uuid.New(), UserID: userID, Title: in.Title}, nil
			})

		handler := NewMediaCreateHandler(mockSvc)

		req := newMultipartRequest(t, http.MethodPost, "/api/media", map[string]string{
			"title":  "Frieren",
			"status": "watching",
		}, "cover.png", "image/png", []byte("fake image bytes"))
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no user id in context", func(t *testing.T) {
		handler := NewMediaCreateHandler(NewMockMediaCreator(ctrl))

		req := newMultipartRequest(t, http.MethodPost, "/api/media", map[string]string{"title": "X"}, "", "", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("bad rating", func(t *testing.T) {
		handler := NewMediaCreateHandler(NewMockMediaCreator(ctrl))

		req := newMultipartRequest(t, http.MethodPost, "/api/media", map[string]string{
			"title":  "X",
			"rating": "not-a-number",
		}, "", "", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid rating")
	})

	t.Run("service validation errors map to 400", func(t *testing.T) {
		for _, svcErr := range []error{
			services.ErrInvalidMediaType,
			services.ErrMissingTitle,
			services.ErrMissingStatus,
			uploads.ErrInvalidFileType,
			uploads.ErrFileTooLarge,
		} {
			mockSvc := NewMockMediaCreator(ctrl)
			mockSvc.EXPECT().
				Create(gomock.Any(), userID, gomock.Any(), gomock.Any()).
				Return(nil, svcErr)

			handler := NewMediaCreateHandler(mockSvc)

			req := newMultipartRequest(t, http.MethodPost, "/api/media", map[string]string{"title": "X"}, "", "", nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), svcErr.Error())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockMediaCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		handler := NewMediaCreateHandler(mockSvc)

		req := newMultipartRequest(t, http.MethodPost, "/api/media", map[string]string{"title": "X"}, "", "", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
