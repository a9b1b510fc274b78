package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis"
	"github.com/labstack/echo"
	echoMiddleware "github.com/labstack/echo/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ghaniswara/swipe-match/internal/config"
	"github.com/ghaniswara/swipe-match/internal/datastore/postgres"
	redisClient "github.com/ghaniswara/swipe-match/internal/datastore/redis"
	"github.com/ghaniswara/swipe-match/internal/middleware"
	matchRepo "github.com/ghaniswara/swipe-match/internal/repository/match"
	swipeRepo "github.com/ghaniswara/swipe-match/internal/repository/swipe"
	userRepo "github.com/ghaniswara/swipe-match/internal/repository/user"
	routesV1 "github.com/ghaniswara/swipe-match/internal/routes/v1"
	authUseCase "github.com/ghaniswara/swipe-match/internal/usecase/auth"
	"github.com/ghaniswara/swipe-match/internal/usecase/feed"
	"github.com/ghaniswara/swipe-match/internal/usecase/match"
	"github.com/ghaniswara/swipe-match/internal/usecase/profile"
	"github.com/ghaniswara/swipe-match/pkg/http_util"
	"github.com/ghaniswara/swipe-match/pkg/jwt"
	"github.com/ghaniswara/swipe-match/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	writer     io.Writer
	httpServer *http.Server
	database   *gorm.DB
	redis      *redis.Client
	log        zerolog.Logger
}

// Run starts the API and blocks until ctx is cancelled or the listener fails.
// The environment is the last argument, then APP_ENV, then "dev".
func Run(ctx context.Context, w io.Writer, args []string) error {
	cfg, err := config.NewConfig(envFromArgs(args))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	server, err := NewServer(w, cfg)
	if err != nil {
		return err
	}
	defer server.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartServer()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	server.log.Info().Msg("shutting down")
	return server.Shutdown(shutdownCtx)
}

func envFromArgs(args []string) string {
	if len(args) > 1 {
		return args[len(args)-1]
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "dev"
}

func NewServer(w io.Writer, cfg config.IConfig) (*Server, error) {
	l := logger.New(w, cfg.Get("LOG_LEVEL"))

	dsn := postgres.DSN(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)

	database, err := postgres.InitializeDB(dsn, logger.Gorm(l))
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if cfg.GetBool("AUTO_MIGRATE") {
		if err := postgres.RunMigrations(database, cfg.Get("MIGRATIONS_DIR")); err != nil {
			return nil, err
		}
		l.Info().Msg("migrations applied")
	}

	rdb, err := redisClient.NewRedis(cfg.Get("REDIS_HOST"), cfg.Get("REDIS_PORT"), cfg.Get("REDIS_PASSWORD"))
	if err != nil {
		return nil, fmt.Errorf("initialize redis: %w", err)
	}
	if rdb == nil {
		l.Warn().Msg("redis not configured, swiped set cache disabled")
	}

	secret := cfg.Get("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT secret is not configured")
	}
	tokens := jwt.New(secret, time.Duration(cfg.GetInt("JWT_TTL_HOURS"))*time.Hour)

	e := newEcho(l, database, rdb, tokens, cfg.GetInt("FEED_BATCH_SIZE"))

	server := &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Get("PORT"),
			Handler:           e,
			ReadHeaderTimeout: 5 * time.Second,
		},
		database: database,
		redis:    rdb,
		log:      l,
	}

	return server, nil
}

func newEcho(l zerolog.Logger, db *gorm.DB, rdb *redis.Client, tokens *jwt.Manager, feedSize int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestLogger(l))
	e.Use(echoMiddleware.Recover())

	users := userRepo.New(db)
	swipes := swipeRepo.NewSwipeRepo(db, rdb)
	matches := matchRepo.NewMatchRepo(db)

	feedCase := feed.New(users, swipes, feedSize)

	routesV1.InitV1Routes(e, routesV1.UseCases{
		Auth:    authUseCase.New(users, tokens),
		Profile: profile.NewProfileUseCase(users),
		Feed:    feedCase,
		Match:   match.NewMatchUseCase(users, swipes, matches, feedCase),
	}, users, tokens)

	e.GET("/health", handleHealthCheck)
	e.GET("/healthz", handleHealthCheck)

	return e
}

// httpErrorHandler renders router and binder errors in the response envelope.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		_ = http_util.InternalError(c, err)
		return
	}
	_ = http_util.Error(c, status, message)
}

func (s *Server) StartServer() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Close releases the database and redis connections.
func (s *Server) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.log.Warn().Err(err).Msg("close redis")
		}
	}
	if sqlDB, err := s.database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			s.log.Warn().Err(err).Msg("close database")
		}
	}
}

func handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
