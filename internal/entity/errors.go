package entity

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrSelfSwipe     = errors.New("cannot swipe yourself")
	ErrSelfMatch     = errors.New("cannot match with yourself")
	ErrInvalidTarget = errors.New("target not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("username or email already taken")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries field level problems of a rejected request.
type ValidationError struct {
	Problems map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
