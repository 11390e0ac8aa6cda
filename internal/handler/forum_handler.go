package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sky-Wdh/Snuggle/internal/repository"
	"github.com/Sky-Wdh/Snuggle/internal/service"
)

func (h *Handlers) GetForums(w http.ResponseWriter, r *http.Request) {
	params := repository.ForumListParams{
		Limit:      limitParam(r, 20, 100),
		Offset:     offsetParam(r),
		Category:   r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("q"),
		SearchType: r.URL.Query().Get("type"),
	}

	forums, err := h.ForumService.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, forums, http.StatusOK)
}

func (h *Handlers) GetForum(w http.ResponseWriter, r *http.Request) {
	forumID := mux.Vars(r)["id"]

	forum, err := h.ForumService.Get(r.Context(), forumID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, forum, http.StatusOK)
}

func (h *Handlers) CreateForum(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string  `json:"title" validate:"required"`
		Description string  `json:"description"`
		BlogID      *string `json:"blog_id"`
		Category    string  `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title is required", http.StatusBadRequest)
		return
	}

	forum, err := h.ForumService.Create(r.Context(), service.CreateForumRequest{
		UserID:      actorID(r),
		BlogID:      req.BlogID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, forum, http.StatusCreated)
}

func (h *Handlers) DeleteForum(w http.ResponseWriter, r *http.Request) {
	forumID := mux.Vars(r)["id"]

	if err := h.ForumService.Delete(r.Context(), actorID(r), forumID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) GetForumComments(w http.ResponseWriter, r *http.Request) {
	forumID := mux.Vars(r)["id"]

	comments, err := h.ForumService.ListComments(r.Context(), forumID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CreateForumComment(w http.ResponseWriter, r *http.Request) {
	forumID := mux.Vars(r)["id"]

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "content is required", http.StatusBadRequest)
		return
	}

	comment, err := h.ForumService.AddComment(r.Context(), service.CreateCommentRequest{
		UserID:  actorID(r),
		ForumID: forumID,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) DeleteForumComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["commentId"]

	if err := h.ForumService.DeleteComment(r.Context(), actorID(r), commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}
