package routesV1Profile

import (
	"errors"
	"net/http"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"github.com/ghaniswara/swipe-match/internal/middleware"
	"github.com/ghaniswara/swipe-match/internal/usecase/profile"
	"github.com/ghaniswara/swipe-match/pkg/http_util"
	"github.com/labstack/echo"
)

func GetMeHandler(c echo.Context) error {
	user, ok := middleware.UserProfile(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.MeResponse]{
		Message: "Profile fetched successfully",
		Data:    meResponse(user),
	})
}

func UpdateMeHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	user, ok := middleware.UserProfile(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	request, err := http_util.DecodeValid[entity.UpdateProfileRequest](c)
	if err != nil {
		return http_util.BadRequest(c, err)
	}

	updated, err := profileCase.UpdateProfile(c.Request().Context(), user.ID, request)

	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		return http_util.BadRequest(c, verr)
	case err != nil:
		return http_util.InternalError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.MeResponse]{
		Message: "Profile updated",
		Data:    meResponse(updated),
	})
}

func meResponse(user *entity.User) entity.MeResponse {
	return entity.MeResponse{
		ProfileResponse: entity.NewProfileResponse(*user, time.Now()),
		Email:           user.Email,
	}
}
