package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/velsky/animelist-api/internal/models"
)

// ServerErrorResponse is the generic failure body carrying the underlying
// error message, matching the original API.
// swagger:model ServerErrorResponse
type ServerErrorResponse struct {
	// Error message
	// default: Server error
	Message string `json:"message"`

	// Underlying error detail
	Error string `json:"error,omitempty"`
}

// MessageResponse is a plain message body.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeServerError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, ServerErrorResponse{
		Message: "Server error",
		Error:   err.Error(),
	})
}

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxMultipartMemory = 32 << 20

// parseMediaUpload extracts the optional single "image" part from a parsed
// multipart form. The caller must close the returned upload's file via the
// returned closer when non-nil.
func parseMediaUpload(r *http.Request) (*models.Upload, func(), error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	upload := &models.Upload{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	return upload, func() { file.Close() }, nil
}

func parseOptionalFloat(val string) (*float64, error) {
	if val == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseOptionalInt(val string) (*int, error) {
	if val == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
