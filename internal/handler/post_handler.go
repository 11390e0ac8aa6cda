package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Sky-Wdh/Snuggle/internal/service"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

func limitParam(r *http.Request, fallback, max int) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > max {
		return fallback
	}
	return limit
}

func offsetParam(r *http.Request) int {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		return 0
	}
	return offset
}

// GetPosts lists every post, newest first. Private posts show up here
// with title and thumbnail; only the detail fetch is access-checked.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, 20, 100)
	offset := offsetParam(r)

	posts, err := h.PostService.ListPosts(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := actorID(r)
	limit := limitParam(r, 14, 100)

	posts, err := h.PostService.GetFeed(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["blogId"]

	posts, err := h.PostService.ListBlogPosts(r.Context(), blogID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	detail, err := h.PostService.GetPost(r.Context(), actorID(r), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, detail, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BlogID       string   `json:"blog_id" validate:"required"`
		Title        string   `json:"title" validate:"required"`
		Content      string   `json:"content"`
		CategoryIDs  []string `json:"category_ids"`
		IsPrivate    *bool    `json:"is_private"`
		ThumbnailURL *string  `json:"thumbnail_url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "blog_id and title are required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		UserID:       actorID(r),
		BlogID:       req.BlogID,
		Title:        req.Title,
		Content:      req.Content,
		CategoryIDs:  req.CategoryIDs,
		IsPrivate:    req.IsPrivate,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req struct {
		Title        *string  `json:"title"`
		Content      *string  `json:"content"`
		CategoryIDs  []string `json:"category_ids"`
		IsPrivate    *bool    `json:"is_private"`
		ThumbnailURL *string  `json:"thumbnail_url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		UserID:       actorID(r),
		PostID:       postID,
		Title:        req.Title,
		Content:      req.Content,
		CategoryIDs:  req.CategoryIDs,
		IsPrivate:    req.IsPrivate,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), actorID(r), postID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}
