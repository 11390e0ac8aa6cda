package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Sky-Wdh/Snuggle/internal/config"
	"github.com/Sky-Wdh/Snuggle/internal/database"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
	"github.com/Sky-Wdh/Snuggle/internal/service"
)

type Handlers struct {
	ProfileService   service.ProfileService
	BlogService      service.BlogService
	PostService      service.PostService
	SubscribeService service.SubscribeService
	ForumService     service.ForumService
	UploadService    service.UploadService
	CategoryRepo     repository.CategoryRepository
	PostRepo         repository.PostRepository
	DB               *database.DB
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		ProfileService:   services.Profile,
		BlogService:      services.Blog,
		PostService:      services.Post,
		SubscribeService: services.Subscribe,
		ForumService:     services.Forum,
		UploadService:    services.Upload,
		CategoryRepo:     repo.Category,
		PostRepo:         repo.Post,
		DB:               db,
		Cfg:              config,
		Validate:         validator.New(),
	}
}

// actorID returns the authenticated user id, or "" for anonymous
// requests that went through the optional auth path.
func actorID(r *http.Request) string {
	userID, _ := r.Context().Value("userID").(string)
	return userID
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
