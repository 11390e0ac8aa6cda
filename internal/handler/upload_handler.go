package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadResponse struct {
	URL string `json:"url"`
}

// UploadTemp takes a multipart image from the editor and stores it in
// the temp area of the bucket.
func (h *Handlers) UploadTemp(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("File too large (max %d MB)",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "Only JPEG, PNG, GIF and WebP files are allowed", http.StatusBadRequest)
		return
	}

	url, err := h.UploadService.UploadTemp(r.Context(), actorID(r), header.Filename, contentType, file, header.Size)
	if err != nil {
		WriteError(w, "Upload failed", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, UploadResponse{URL: url}, http.StatusOK)
}

func (h *Handlers) DeleteTemp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "url is required", http.StatusBadRequest)
		return
	}

	if err := h.UploadService.DeleteTemp(r.Context(), req.URL); err != nil {
		WriteError(w, "Delete failed", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}
