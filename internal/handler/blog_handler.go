package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sky-Wdh/Snuggle/internal/service"
)

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string  `json:"name" validate:"required"`
		Description  *string `json:"description"`
		ThumbnailURL *string `json:"thumbnail_url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name is required", http.StatusBadRequest)
		return
	}

	blog, err := h.BlogService.CreateBlog(r.Context(), service.CreateBlogRequest{
		UserID:       actorID(r),
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, blog, http.StatusCreated)
}

func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]

	blog, err := h.BlogService.GetBlog(r.Context(), blogID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, blog, http.StatusOK)
}

func (h *Handlers) GetUserBlogs(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	blogs, err := h.BlogService.GetUserBlogs(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, blogs, http.StatusOK)
}

// GetTrash lists the caller's soft-deleted blogs, restorable one by
// one.
func (h *Handlers) GetTrash(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.GetTrash(r.Context(), actorID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]

	if err := h.BlogService.DeleteBlog(r.Context(), actorID(r), blogID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) RestoreBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]

	blog, err := h.BlogService.RestoreBlog(r.Context(), actorID(r), blogID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, blog, http.StatusOK)
}
