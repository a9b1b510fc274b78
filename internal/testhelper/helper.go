// Package testhelper provisions disposable infrastructure for tests.
package testhelper

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/ory/dockertest"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ghaniswara/swipe-match/internal/datastore/postgres"
	"github.com/ghaniswara/swipe-match/internal/entity"
)

const (
	dbUser     = "swipe"
	dbPassword = "swipe"
	dbName     = "swipe_test"
)

// PostgresResources holds a throwaway postgres container and its connection.
type PostgresResources struct {
	Pool       *dockertest.Pool
	DBResource *dockertest.Resource
	DSN        string
	ORM        *gorm.DB
}

// SetupPostgres starts postgres in docker and applies the migrations.
func SetupPostgres() (*PostgresResources, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("docker is not reachable: %w", err)
	}

	dbResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "14",
		Env: []string{
			"POSTGRES_USER=" + dbUser,
			"POSTGRES_PASSWORD=" + dbPassword,
			"POSTGRES_DB=" + dbName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}

	resources := &PostgresResources{Pool: pool, DBResource: dbResource}

	hostPort := strings.Split(dbResource.GetHostPort("5432/tcp"), ":")
	resources.DSN = postgres.DSN(dbUser, dbPassword, dbName, hostPort[0], hostPort[1])

	pool.MaxWait = 120 * time.Second
	if err := pool.Retry(func() error {
		db, err := postgres.InitializeDB(resources.DSN, logger.Default.LogMode(logger.Silent))
		if err != nil {
			return err
		}
		resources.ORM = db
		return nil
	}); err != nil {
		resources.Cleanup()
		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	if err := postgres.RunMigrations(resources.ORM, "migrations"); err != nil {
		resources.Cleanup()
		return nil, err
	}

	return resources, nil
}

// Cleanup purges the container.
func (r *PostgresResources) Cleanup() {
	if r == nil || r.Pool == nil || r.DBResource == nil {
		return
	}
	if err := r.Pool.Purge(r.DBResource); err != nil {
		log.Warn().Err(err).Msg("could not purge postgres")
	}
}

// Truncate empties every table so tests start from a clean slate.
func (r *PostgresResources) Truncate() error {
	return r.ORM.Exec("TRUNCATE matches, swipes, users RESTART IDENTITY CASCADE").Error
}

// RequireDB skips t when the suite runs without docker.
func RequireDB(t testing.TB, r *PostgresResources) *gorm.DB {
	t.Helper()
	if r == nil || r.ORM == nil {
		t.Skip("postgres unavailable")
	}
	if err := r.Truncate(); err != nil {
		t.Fatalf("truncate tables: %s", err)
	}
	return r.ORM
}

// PopulateUsers inserts count users of gender with fake profile data.
func PopulateUsers(db *gorm.DB, count int, gender entity.Gender) ([]entity.User, error) {
	users := make([]entity.User, 0, count)
	for i := 0; i < count; i++ {
		born := time.Now().AddDate(-20-i, 0, 0).UTC().Truncate(24 * time.Hour)
		user := entity.User{
			Username:  faker.Username() + fmt.Sprint(time.Now().UnixNano()),
			Email:     fmt.Sprintf("%d.%s", time.Now().UnixNano(), faker.Email()),
			Password:  faker.Password(),
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Bio:       truncate(faker.Sentence(), 160),
			Gender:    gender,
			BirthDate: &born,
			Likes:     []string{"food", "gym"},
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
