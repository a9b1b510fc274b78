package entity

import (
	"time"

	"github.com/lib/pq"
)

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Complement returns the gender shown in the feed of a viewer with gender g.
// Only male and female have a complement; everybody else sees every gender.
func (g Gender) Complement() (Gender, bool) {
	switch g {
	case GenderMale:
		return GenderFemale, true
	case GenderFemale:
		return GenderMale, true
	default:
		return GenderUnset, false
	}
}

type User struct {
	ID            uint           `gorm:"primaryKey;column:id"`
	Username      string         `gorm:"unique;not null;column:username"`
	Email         string         `gorm:"unique;not null;column:email"`
	Password      string         `gorm:"not null;column:password"`
	FirstName     string         `gorm:"not null;column:first_name"`
	LastName      string         `gorm:"not null;column:last_name"`
	Bio           string         `gorm:"not null;column:bio"`
	Gender        Gender         `gorm:"not null;column:gender"`
	BirthDate     *time.Time     `gorm:"column:birth_date;type:date"`
	CoverImageURL string         `gorm:"not null;column:cover_image_url"`
	Likes         pq.StringArray `gorm:"column:likes;type:text[];not null"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

// Age in full years at now, nil when the birth date is unknown.
func (u *User) Age(now time.Time) *int {
	if u.BirthDate == nil {
		return nil
	}
	born := *u.BirthDate
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return &years
}

// CandidateFilter describes which users a viewer may see in the feed.
type CandidateFilter struct {
	ViewerID uint
	Gender   *Gender
}

func (f CandidateFilter) Allows(u User) bool {
	if u.ID == f.ViewerID {
		return false
	}
	if f.Gender != nil && u.Gender != *f.Gender {
		return false
	}
	return true
}
