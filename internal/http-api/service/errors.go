package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses: not-found → 404, validation → 400, permission → 403,
// delivery → 500.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTitleNotFound    = errors.New("title not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrCommentNotFound  = errors.New("comment not found")

	ErrReservedUsername = errors.New("it is forbidden to use this login")
	ErrNameInUse        = errors.New("such a user already exists")
	ErrEmailInUse       = errors.New("email already in use")
	ErrInvalidRole      = errors.New("invalid role")

	ErrInvalidSlug      = errors.New("slug must contain only letters, digits, hyphens and underscores")
	ErrSlugInUse        = errors.New("slug already in use")
	ErrYearInFuture     = errors.New("year cannot be greater than the current year")
	ErrUnresolvedSlug   = errors.New("referenced slug does not exist")
	ErrDuplicateReview  = errors.New("you are allowed to leave only one review")
	ErrScoreOutOfRange  = errors.New("score must be between 1 and 10")
	ErrPermissionDenied = errors.New("you do not have permission to perform this action")

	ErrInvalidConfirmationCode = errors.New("Not valid confirmation code")
	ErrCodeDelivery            = errors.New("Failed to send confirmation code")
)
