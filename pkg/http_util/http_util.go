package http_util

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"github.com/ghaniswara/swipe-match/pkg/validator"
	"github.com/labstack/echo"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Property string `json:"property"`
	Detail   string `json:"detail"`
}

type HTTPResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type HTTPErrorResponse[T any] struct {
	HTTPResponse[T]
	Errors []ErrorResponse `json:"errors"`
}

func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// DecodeValid binds the body and runs its Validate method. Validation
// problems come back as *entity.ValidationError.
func DecodeValid[T any, PT interface {
	*T
	validator.Validate
}](c echo.Context) (T, error) {
	v, err := Decode[T](c)
	if err != nil {
		return v, err
	}

	if problems := PT(&v).Validate(c.Request().Context()); len(problems) > 0 {
		return v, &entity.ValidationError{Problems: problems}
	}
	return v, nil
}

func DecodeBody[T any](body []byte, v T) (T, error) {
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// ProblemsToErrors flattens validation problems into a stable, sorted list.
func ProblemsToErrors(problems map[string][]string) []ErrorResponse {
	fields := make([]string, 0, len(problems))
	for field := range problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]ErrorResponse, 0, len(problems))
	for _, field := range fields {
		for _, detail := range problems[field] {
			out = append(out, ErrorResponse{Property: field, Detail: detail})
		}
	}
	return out
}

func Error(c echo.Context, status int, message string, errs ...ErrorResponse) error {
	if errs == nil {
		errs = []ErrorResponse{}
	}
	return Encode(c, status, HTTPErrorResponse[any]{
		HTTPResponse: HTTPResponse[any]{Message: message},
		Errors:       errs,
	})
}

// BadRequest renders a decode or validation failure.
func BadRequest(c echo.Context, err error) error {
	if verr, ok := err.(*entity.ValidationError); ok {
		return Error(c, http.StatusBadRequest, "Bad request check your request", ProblemsToErrors(verr.Problems)...)
	}
	return Error(c, http.StatusBadRequest, "Bad Request", ErrorResponse{Property: "request", Detail: "check your request"})
}

// InternalError logs err with the request logger and hides it from the client.
func InternalError(c echo.Context, err error) error {
	log.Ctx(c.Request().Context()).Error().Err(err).
		Str("path", c.Request().URL.Path).
		Msg("request failed")
	return Error(c, http.StatusInternalServerError, "Internal server error")
}
