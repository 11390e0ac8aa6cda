package service

import (
	"github.com/Sky-Wdh/Snuggle/internal/config"
	"github.com/Sky-Wdh/Snuggle/internal/repository"
	"github.com/Sky-Wdh/Snuggle/internal/storage"
)

type Service struct {
	Profile   ProfileService
	Blog      BlogService
	Post      PostService
	Subscribe SubscribeService
	Forum     ForumService
	Upload    UploadService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Profile:   NewProfileService(rep.Profile, rep.Blog),
		Blog:      NewBlogService(rep.Blog),
		Post:      NewPostService(rep.Post, rep.Blog, rep.Profile, rep.Category, rep.Subscribe),
		Subscribe: NewSubscribeService(rep.Subscribe),
		Forum:     NewForumService(rep.Forum),
		Upload:    NewUploadService(storage, cfg),
	}
}
