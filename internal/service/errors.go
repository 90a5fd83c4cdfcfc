package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrRateLimited is matched by every RateLimitError.
var ErrRateLimited = errors.New("too many requests")

// RateLimitError is returned when a client exhausted its submission quota.
type RateLimitError struct {
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s, retry after %s", ErrRateLimited, e.RetryAfter.Round(time.Second))
}

// Is lets errors.Is(err, ErrRateLimited) match.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
