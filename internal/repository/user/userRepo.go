package userRepo

import (
	"context"
	"errors"

	"github.com/ghaniswara/swipe-match/internal/entity"
	"gorm.io/gorm"
)

type IUserRepo interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	GetUserByUnameOrEmail(ctx context.Context, email, uname string) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) error

	// ListCandidates returns users passing filter and not in excludeIDs,
	// ordered by ascending id.
	ListCandidates(ctx context.Context, filter entity.CandidateFilter, excludeIDs []uint, limit int) ([]entity.User, error)
}

type UserRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IUserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.Likes == nil {
		user.Likes = []string{}
	}
	result := r.db.WithContext(ctx).Create(user)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return nil, entity.ErrUserExists
	}
	return user, result.Error
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrUserNotFound
	}
	return &user, result.Error
}

func (r *UserRepo) GetUserByUnameOrEmail(ctx context.Context, email, uname string) (*entity.User, error) {
	var user entity.User
	query := r.db.WithContext(ctx)
	if email != "" {
		query = query.Where("email = ?", email)
	}
	if uname != "" {
		query = query.Or("username = ?", uname)
	}
	result := query.First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrUserNotFound
	}
	return &user, result.Error
}

func (r *UserRepo) UpdateUser(ctx context.Context, user *entity.User) error {
	if user.Likes == nil {
		user.Likes = []string{}
	}
	return r.db.WithContext(ctx).
		Model(user).
		Select("first_name", "last_name", "bio", "gender", "birth_date", "cover_image_url", "likes", "updated_at").
		Updates(user).Error
}

func (r *UserRepo) ListCandidates(ctx context.Context, filter entity.CandidateFilter, excludeIDs []uint, limit int) ([]entity.User, error) {
	profiles := []entity.User{}

	query := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id <> ?", filter.ViewerID)

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	if filter.Gender != nil {
		query = query.Where("gender = ?", *filter.Gender)
	}

	res := query.
		Order("id ASC").
		Limit(limit).
		Find(&profiles)

	return profiles, res.Error
}
