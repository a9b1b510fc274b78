package routesV1Match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"github.com/ghaniswara/swipe-match/internal/middleware"
	"github.com/ghaniswara/swipe-match/internal/usecase/feed"
	"github.com/ghaniswara/swipe-match/internal/usecase/match"
	"github.com/ghaniswara/swipe-match/pkg/http_util"
	"github.com/labstack/echo"
)

func FeedHandler(c echo.Context, feedCase feed.IFeedUseCase) error {
	user, ok := middleware.UserProfile(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return http_util.Error(c, http.StatusBadRequest, "Bad request check your request", http_util.ErrorResponse{
				Property: "limit",
				Detail:   "Limit must be an integer",
			})
		}
		limit = parsed
	}

	profiles, err := feedCase.NextBatch(c.Request().Context(), user, limit)
	if err != nil {
		return http_util.InternalError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.ProfileResponse]{
		Message: "Profiles fetched successfully",
		Data:    entity.NewProfileResponses(profiles, time.Now()),
	})
}

func SwipeHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := middleware.UserProfile(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	request, err := http_util.DecodeValid[entity.SwipeRequest](c)
	if err != nil {
		return http_util.BadRequest(c, err)
	}

	decision, _ := entity.ParseDecision(request.Action)

	outcome, err := matchCase.Swipe(c.Request().Context(), user.ID, uint(*request.TargetID), decision)

	switch {
	case errors.Is(err, entity.ErrSelfSwipe), errors.Is(err, entity.ErrSelfMatch):
		return http_util.Error(c, http.StatusBadRequest, "Bad request check your request", http_util.ErrorResponse{
			Property: "targetId",
			Detail:   err.Error(),
		})
	case errors.Is(err, entity.ErrInvalidTarget):
		return http_util.Error(c, http.StatusNotFound, "Target not found", http_util.ErrorResponse{
			Property: "targetId",
			Detail:   "No user with this id",
		})
	case err != nil:
		return http_util.InternalError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SwipeResponse]{
		Message: "Swipe outcome",
		Data:    entity.NewSwipeResponse(outcome, time.Now()),
	})
}

func MatchesHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := middleware.UserProfile(c)
	if !ok {
		return http_util.Error(c, http.StatusUnauthorized, "invalid token")
	}

	views, err := matchCase.ListMatches(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.InternalError(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.MatchResponse]{
		Message: "Matches fetched successfully",
		Data:    entity.NewMatchResponses(views, time.Now()),
	})
}
