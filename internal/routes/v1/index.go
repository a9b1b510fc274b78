package routesV1

import (
	"github.com/ghaniswara/swipe-match/internal/middleware"
	userRepo "github.com/ghaniswara/swipe-match/internal/repository/user"
	routesV1Auth "github.com/ghaniswara/swipe-match/internal/routes/v1/auth"
	routesV1Match "github.com/ghaniswara/swipe-match/internal/routes/v1/match"
	routesV1Profile "github.com/ghaniswara/swipe-match/internal/routes/v1/profile"
	authUseCase "github.com/ghaniswara/swipe-match/internal/usecase/auth"
	"github.com/ghaniswara/swipe-match/internal/usecase/feed"
	"github.com/ghaniswara/swipe-match/internal/usecase/match"
	"github.com/ghaniswara/swipe-match/internal/usecase/profile"
	"github.com/ghaniswara/swipe-match/pkg/jwt"
	"github.com/labstack/echo"
)

type UseCases struct {
	Auth    authUseCase.IAuthUseCase
	Profile profile.IProfileUseCase
	Feed    feed.IFeedUseCase
	Match   match.IMatchUseCase
}

func InitV1Routes(e *echo.Echo, cases UseCases, userRepo userRepo.IUserRepo, tokens *jwt.Manager) {
	v1 := e.Group("/v1")

	v1.POST("/auth/sign-up", func(c echo.Context) error {
		return routesV1Auth.SignUpHandler(c, cases.Auth)
	})
	v1.POST("/auth/sign-in", func(c echo.Context) error {
		return routesV1Auth.SignInHandler(c, cases.Auth)
	})

	auth := middleware.JWTMiddleware(userRepo, tokens)

	v1.GET("/users/me", routesV1Profile.GetMeHandler, auth)
	v1.PATCH("/users/me", func(c echo.Context) error {
		return routesV1Profile.UpdateMeHandler(c, cases.Profile)
	}, auth)

	v1.GET("/feed", func(c echo.Context) error {
		return routesV1Match.FeedHandler(c, cases.Feed)
	}, auth)
	v1.POST("/swipe", func(c echo.Context) error {
		return routesV1Match.SwipeHandler(c, cases.Match)
	}, auth)
	v1.GET("/matches", func(c echo.Context) error {
		return routesV1Match.MatchesHandler(c, cases.Match)
	}, auth)
}
