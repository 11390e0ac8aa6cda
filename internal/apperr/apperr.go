package apperr

import "errors"

// Sentinel errors for every outcome the REST layer has to tell apart.
// Repositories and services return these (possibly wrapped with %w) and
// handlers map them to HTTP statuses with errors.Is.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotOwner        = errors.New("not the owner of this resource")
	ErrPrivatePost     = errors.New("private post")

	ErrPostNotFound    = errors.New("post not found")
	ErrBlogNotFound    = errors.New("blog not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrForumNotFound   = errors.New("forum post not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrAlreadyDeleted = errors.New("already deleted")
	ErrNotDeleted     = errors.New("not deleted")

	ErrMissingFields = errors.New("required fields are missing")
)
