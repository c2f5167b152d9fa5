package domain

import "errors"

var (
	ErrConfig           = errors.New("configuration error")
	ErrUnauthorized     = errors.New("not authorized")
	ErrAccountNotFound  = errors.New("account not found")
	ErrListNotFound     = errors.New("list not found")
	ErrFollowPending    = errors.New("follow request pending")
	ErrRateLimited      = errors.New("rate limited")
	ErrInvalidHandle    = errors.New("invalid account handle")
	ErrImportIncomplete = errors.New("import finished with failures")
)
