// Package access decides whether an actor may read or mutate a
// resource. Every check is a plain equality of opaque identity strings;
// there are no roles and no delegation. An empty actor id means the
// request is anonymous.
package access

import (
	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/models"
)

// CanReadPost allows everyone to read a public post. A private post is
// readable only by the user recorded on the post itself (the owner id
// copied from the blog at creation time, not a fresh blog lookup).
func CanReadPost(actorID string, post *models.Post) error {
	if post == nil {
		return apperr.ErrPostNotFound
	}
	if !post.IsPrivate {
		return nil
	}
	if actorID != "" && actorID == post.UserID {
		return nil
	}
	return apperr.ErrPrivatePost
}

// CanWriteBlog gates create/update/delete of content under a blog. The
// blog is looked up fresh by the caller; a missing blog is a distinct
// outcome from an ownership mismatch so the boundary can answer 404 vs
// 403.
func CanWriteBlog(actorID string, blog *models.Blog) error {
	if blog == nil {
		return apperr.ErrBlogNotFound
	}
	if actorID == "" || actorID != blog.UserID {
		return apperr.ErrNotOwner
	}
	return nil
}

// CanWriteProfile allows a user to mutate only their own account.
func CanWriteProfile(actorID, targetUserID string) error {
	if actorID == "" || actorID != targetUserID {
		return apperr.ErrNotOwner
	}
	return nil
}

// CanWriteForum gates forum post mutation on authorship.
func CanWriteForum(actorID string, forum *models.Forum) error {
	if forum == nil {
		return apperr.ErrForumNotFound
	}
	if actorID == "" || actorID != forum.UserID {
		return apperr.ErrNotOwner
	}
	return nil
}

// CanWriteComment gates comment deletion on authorship.
func CanWriteComment(actorID string, comment *models.ForumComment) error {
	if comment == nil {
		return apperr.ErrCommentNotFound
	}
	if actorID == "" || actorID != comment.UserID {
		return apperr.ErrNotOwner
	}
	return nil
}
