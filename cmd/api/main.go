package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sky-Wdh/Snuggle/cmd/app"
	"github.com/Sky-Wdh/Snuggle/internal/config"
	handlers "github.com/Sky-Wdh/Snuggle/internal/handler"
	"github.com/Sky-Wdh/Snuggle/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.Identity.AnonKey == "" {
		log.Fatal("SUPABASE_ANON_KEY is not set")
	}

	db, repo, services, idp := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	authed := middleware.Auth(idp)
	optional := middleware.OptionalAuth(idp)

	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Posts. The feed route registers before the {id} route so "feed"
	// is not taken for a post id.
	api.Handle("/posts/feed", authed(http.HandlerFunc(handler.GetFeed))).Methods(http.MethodGet)
	api.Handle("/posts/blog/{blogId}", http.HandlerFunc(handler.GetBlogPosts)).Methods(http.MethodGet)
	api.Handle("/posts/{id}", optional(http.HandlerFunc(handler.GetPost))).Methods(http.MethodGet)
	api.Handle("/posts", http.HandlerFunc(handler.GetPosts)).Methods(http.MethodGet)
	api.Handle("/posts", authed(http.HandlerFunc(handler.CreatePost))).Methods(http.MethodPost)
	api.Handle("/posts/{id}", authed(http.HandlerFunc(handler.UpdatePost))).Methods(http.MethodPatch)
	api.Handle("/posts/{id}", authed(http.HandlerFunc(handler.DeletePost))).Methods(http.MethodDelete)

	// Profiles
	api.Handle("/profile/sync", authed(http.HandlerFunc(handler.SyncProfile))).Methods(http.MethodPost)
	api.Handle("/profile/restore", authed(http.HandlerFunc(handler.RestoreAccount))).Methods(http.MethodPatch)
	api.Handle("/profile/{id}", http.HandlerFunc(handler.GetProfile)).Methods(http.MethodGet)
	api.Handle("/profile", authed(http.HandlerFunc(handler.DeleteAccount))).Methods(http.MethodDelete)

	// Blogs
	api.Handle("/blogs/trash", authed(http.HandlerFunc(handler.GetTrash))).Methods(http.MethodGet)
	api.Handle("/blogs/user/{userId}", http.HandlerFunc(handler.GetUserBlogs)).Methods(http.MethodGet)
	api.Handle("/blogs/{id}/restore", authed(http.HandlerFunc(handler.RestoreBlog))).Methods(http.MethodPatch)
	api.Handle("/blogs/{id}", http.HandlerFunc(handler.GetBlog)).Methods(http.MethodGet)
	api.Handle("/blogs/{id}", authed(http.HandlerFunc(handler.DeleteBlog))).Methods(http.MethodDelete)
	api.Handle("/blogs", authed(http.HandlerFunc(handler.CreateBlog))).Methods(http.MethodPost)

	// Categories
	api.Handle("/categories/post/{postId}", http.HandlerFunc(handler.GetPostCategories)).Methods(http.MethodGet)
	api.Handle("/categories", http.HandlerFunc(handler.GetCategories)).Methods(http.MethodGet)
	api.Handle("/categories", authed(http.HandlerFunc(handler.CreateCategory))).Methods(http.MethodPost)

	// Subscriptions
	api.Handle("/subscribe/check", authed(http.HandlerFunc(handler.CheckSubscription))).Methods(http.MethodGet)
	api.Handle("/subscribe/counts/{userId}", http.HandlerFunc(handler.SubscriptionCounts)).Methods(http.MethodGet)
	api.Handle("/subscribe", authed(http.HandlerFunc(handler.ToggleSubscription))).Methods(http.MethodPost)

	// Forum
	api.Handle("/forum/comments/{commentId}", authed(http.HandlerFunc(handler.DeleteForumComment))).Methods(http.MethodDelete)
	api.Handle("/forum/{id}/comments", http.HandlerFunc(handler.GetForumComments)).Methods(http.MethodGet)
	api.Handle("/forum/{id}/comments", authed(http.HandlerFunc(handler.CreateForumComment))).Methods(http.MethodPost)
	api.Handle("/forum/{id}", http.HandlerFunc(handler.GetForum)).Methods(http.MethodGet)
	api.Handle("/forum/{id}", authed(http.HandlerFunc(handler.DeleteForum))).Methods(http.MethodDelete)
	api.Handle("/forum", http.HandlerFunc(handler.GetForums)).Methods(http.MethodGet)
	api.Handle("/forum", authed(http.HandlerFunc(handler.CreateForum))).Methods(http.MethodPost)

	// Uploads
	api.Handle("/upload/temp", authed(http.HandlerFunc(handler.UploadTemp))).Methods(http.MethodPost)
	api.Handle("/upload/temp", authed(http.HandlerFunc(handler.DeleteTemp))).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		r,
		middleware.Logging,
		middleware.CORS(cfg.FrontendURL),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server running on http://localhost%s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
