package entity

import (
	"context"
	"net/url"
	"regexp"
	"time"

	"github.com/ghaniswara/swipe-match/pkg/likes"
)

const (
	DateLayout   = "2006-01-02"
	maxBioLength = 160
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CreateUserRequest struct {
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Password      string      `json:"password"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Bio           string      `json:"bio"`
	Gender        Gender      `json:"gender"`
	BirthDate     string      `json:"birthDate"`
	CoverImageURL string      `json:"coverImageUrl"`
	Likes         likes.Input `json:"likes"`
}

func (r *CreateUserRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Username == "" {
		problems["username"] = append(problems["username"], "Username is required")
	}

	if len(r.Username) > 150 {
		problems["username"] = append(problems["username"], "Username is too long")
	}

	if r.Email == "" {
		problems["email"] = append(problems["email"], "Email is required")
	} else if !emailRegex.MatchString(r.Email) {
		problems["email"] = append(problems["email"], "Invalid email format")
	}

	if len(r.Password) < 8 {
		problems["password"] = append(problems["password"], "Password must be at least 8 characters")
	}

	if len([]byte(r.Password)) > 72 {
		problems["password"] = append(problems["password"], "Password length should not exceed 72 bytes")
	}

	if r.Bio == "" {
		problems["bio"] = append(problems["bio"], "Bio is required")
	}

	validateBio(problems, r.Bio)

	if !r.Gender.Valid() {
		problems["gender"] = append(problems["gender"], "Gender must be one of male, female, other")
	}

	if r.BirthDate == "" {
		problems["birthDate"] = append(problems["birthDate"], "Birth date is required")
	} else {
		validateBirthDate(problems, r.BirthDate)
	}

	validateCoverURL(problems, r.CoverImageURL)

	if _, err := likes.Normalize(r.Likes); err != nil {
		problems["likes"] = append(problems["likes"], err.Error())
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" && r.Username == "" {
		problems["email/username"] = append(problems["email/username"], "Either Email or Username is required")
	}

	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		problems["email"] = append(problems["email"], "Invalid email format")
	}

	if r.Password == "" {
		problems["password"] = append(problems["password"], "Password is required")
	}

	return problems
}

// UpdateProfileRequest is a partial update, nil fields are left untouched.
type UpdateProfileRequest struct {
	FirstName     *string      `json:"firstName"`
	LastName      *string      `json:"lastName"`
	Bio           *string      `json:"bio"`
	Gender        *Gender      `json:"gender"`
	BirthDate     *string      `json:"birthDate"`
	CoverImageURL *string      `json:"coverImageUrl"`
	Likes         *likes.Input `json:"likes"`
}

func (r *UpdateProfileRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Bio != nil {
		if *r.Bio == "" {
			problems["bio"] = append(problems["bio"], "Bio may not be blank")
		}
		validateBio(problems, *r.Bio)
	}

	if r.Gender != nil && !r.Gender.Valid() {
		problems["gender"] = append(problems["gender"], "Gender must be one of male, female, other")
	}

	if r.BirthDate != nil {
		validateBirthDate(problems, *r.BirthDate)
	}

	if r.CoverImageURL != nil {
		validateCoverURL(problems, *r.CoverImageURL)
	}

	if r.Likes != nil {
		if _, err := likes.Normalize(*r.Likes); err != nil {
			problems["likes"] = append(problems["likes"], err.Error())
		}
	}

	return problems
}

type SwipeRequest struct {
	TargetID *int64 `json:"targetId"`
	Action   string `json:"action"`
}

func (r *SwipeRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.TargetID == nil {
		problems["targetId"] = append(problems["targetId"], "Target is required")
	} else if *r.TargetID <= 0 {
		problems["targetId"] = append(problems["targetId"], "Target must be a positive integer")
	}

	if _, ok := ParseDecision(r.Action); !ok {
		problems["action"] = append(problems["action"], `Action must be "like" or "pass"`)
	}

	return problems
}

func validateBio(problems map[string][]string, bio string) {
	if len([]rune(bio)) > maxBioLength {
		problems["bio"] = append(problems["bio"], "Bio should not exceed 160 characters")
	}
}

func validateBirthDate(problems map[string][]string, value string) {
	born, err := time.Parse(DateLayout, value)
	if err != nil {
		problems["birthDate"] = append(problems["birthDate"], "Birth date must be formatted YYYY-MM-DD")
		return
	}
	if born.After(time.Now()) {
		problems["birthDate"] = append(problems["birthDate"], "Birth date may not be in the future")
	}
}

func validateCoverURL(problems map[string][]string, value string) {
	if value == "" {
		return
	}
	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems["coverImageUrl"] = append(problems["coverImageUrl"], "Cover image must be an absolute http(s) URL")
	}
}
