package routesV1Auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
	authUseCase "github.com/ghaniswara/swipe-match/internal/usecase/auth"
	"github.com/ghaniswara/swipe-match/pkg/http_util"
	"github.com/labstack/echo"
)

func SignUpHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.DecodeValid[entity.CreateUserRequest](c)
	if err != nil {
		return http_util.BadRequest(c, err)
	}

	user, token, err := authCase.SignupUser(c.Request().Context(), reqBody)

	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		return http_util.BadRequest(c, verr)
	case errors.Is(err, entity.ErrUserExists):
		return http_util.Error(c, http.StatusConflict, "User already exists", http_util.ErrorResponse{
			Property: "username/email",
			Detail:   err.Error(),
		})
	case err != nil:
		return http_util.InternalError(c, err)
	}

	return http_util.Encode(c, http.StatusCreated, http_util.HTTPResponse[entity.SignUpResponse]{
		Message: "Sign-up successful",
		Data: entity.SignUpResponse{
			User: entity.MeResponse{
				ProfileResponse: entity.NewProfileResponse(*user, time.Now()),
				Email:           user.Email,
			},
			Token: token,
		},
	})
}

func SignInHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.DecodeValid[entity.SignInRequest](c)
	if err != nil {
		return http_util.BadRequest(c, err)
	}

	jwtToken, err := authCase.SignIn(c.Request().Context(), reqBody.Email, reqBody.Username, reqBody.Password)
	if errors.Is(err, entity.ErrInvalidCredentials) {
		return http_util.Error(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return http_util.InternalError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SignInResponse]{
		Message: "Sign-in successful",
		Data:    entity.SignInResponse{Token: jwtToken},
	})
}
