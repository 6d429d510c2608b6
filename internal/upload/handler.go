package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/novel2image/proxy/internal/apperror"
	"github.com/novel2image/proxy/internal/response"
	"github.com/novel2image/proxy/internal/storage"
)

// Handler holds HTTP handlers for the storage upload endpoints.
type Handler struct {
	svc     *Service
	maxSize int64
	// tempDir holds staged uploads; empty means os.TempDir().
	tempDir string
}

// NewHandler creates a new upload Handler. maxSize caps the multipart body
// of a stream upload; larger bodies are rejected with 400.
func NewHandler(svc *Service, maxSize int64) *Handler {
	return &Handler{svc: svc, maxSize: maxSize}
}

type fromFileRequest struct {
	File       string `json:"file" example:"/data/output/1.png"`
	ObjectKey  string `json:"objectKey,omitempty" example:"covers/chapter-1.png"`
	BucketName string `json:"bucketName,omitempty" example:"novel-images"`
}

// UploadFromFile godoc
//
//	@Summary		Upload a server-local file
//	@Description	Uploads a file that already exists on the server. When objectKey is omitted a key of the form uploads/YYYY/MM/DD/<hex><ext> is derived. Missing storage configuration answers 400.
//	@Tags			storage
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fromFileRequest	true	"File path and optional key/bucket"
//	@Success		200		{object}	Result
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Failure		502		{object}	response.Envelope
//	@Router			/proxy/tos/upload-from-file [post]
func (h *Handler) UploadFromFile(w http.ResponseWriter, r *http.Request) {
	var req fromFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.File == "" {
		response.Fail(w, apperror.Validation("missing required parameter: file"))
		return
	}

	res, err := h.svc.Upload(r.Context(), Request{
		Path:         req.File,
		Bucket:       req.BucketName,
		ObjectKey:    req.ObjectKey,
		ConfigStatus: http.StatusBadRequest,
	})
	if err != nil {
		response.Fail(w, err)
		return
	}

	response.OK(w, res)
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Stages the multipart "file" part in a temporary file, uploads it, and removes the temporary file. Missing storage configuration answers 500.
//	@Tags			storage
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file	true	"File to upload"
//	@Param			objectKey	query		string	false	"Object key to use verbatim"
//	@Param			bucketName	query		string	false	"Target bucket (defaults to TOS_BUCKET_NAME)"
//	@Success		200			{object}	Result
//	@Failure		400			{object}	response.Envelope	"Missing file part or body over MAX_UPLOAD_SIZE"
//	@Failure		500			{object}	response.Envelope
//	@Failure		502			{object}	response.Envelope
//	@Router			/proxy/tos/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Fail(w, apperror.Validation(fmt.Sprintf("file too large: limit is %d bytes", h.maxSize)))
			return
		}
		response.Fail(w, apperror.Validation("invalid multipart body"))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Fail(w, apperror.Validation("missing required parameter: file"))
		return
	}
	defer file.Close()

	tmpPath, err := h.stage(file, header.Filename)
	if err != nil {
		response.Fail(w, apperror.Unknown(err))
		return
	}
	defer h.removeTemp(tmpPath)

	res, err := h.svc.Upload(r.Context(), Request{
		Path:         tmpPath,
		Filename:     header.Filename,
		Bucket:       r.URL.Query().Get("bucketName"),
		ObjectKey:    r.URL.Query().Get("objectKey"),
		ConfigStatus: http.StatusInternalServerError,
	})
	if err != nil {
		response.Fail(w, err)
		return
	}

	response.OK(w, res)
}

// stage copies src into a new temporary file that keeps filename's
// extension and returns its path. The file is removed on copy failure.
func (h *Handler) stage(src io.Reader, filename string) (string, error) {
	tmp, err := os.CreateTemp(h.tempDir, "upload-*"+storage.Ext(filepath.Base(filename)))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}

func (h *Handler) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("upload: remove temp file %s: %v", path, err)
	}
}
