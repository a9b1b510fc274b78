package entity

import "time"

type ProfileResponse struct {
	ID            uint     `json:"id"`
	Username      string   `json:"username"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Bio           string   `json:"bio"`
	Gender        Gender   `json:"gender"`
	Age           *int     `json:"age"`
	BirthDate     *string  `json:"birthDate"`
	CoverImageURL string   `json:"coverImageUrl"`
	Likes         []string `json:"likes"`
}

func NewProfileResponse(u User, now time.Time) ProfileResponse {
	resp := ProfileResponse{
		ID:            u.ID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Bio:           u.Bio,
		Gender:        u.Gender,
		Age:           u.Age(now),
		CoverImageURL: u.CoverImageURL,
		Likes:         []string(u.Likes),
	}
	if resp.Likes == nil {
		resp.Likes = []string{}
	}
	if u.BirthDate != nil {
		date := u.BirthDate.Format(DateLayout)
		resp.BirthDate = &date
	}
	return resp
}

func NewProfileResponses(users []User, now time.Time) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewProfileResponse(u, now))
	}
	return out
}

// MeResponse is the owner's view of their profile.
type MeResponse struct {
	ProfileResponse
	Email string `json:"email"`
}

type SignUpResponse struct {
	User  MeResponse `json:"user"`
	Token string     `json:"token"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type SwipeResponse struct {
	Matched bool             `json:"matched"`
	MatchID *uint            `json:"matchId"`
	Next    *ProfileResponse `json:"next"`
}

func NewSwipeResponse(outcome *SwipeOutcome, now time.Time) SwipeResponse {
	resp := SwipeResponse{
		Matched: outcome.Matched,
		MatchID: outcome.MatchID,
	}
	if outcome.Next != nil {
		next := NewProfileResponse(*outcome.Next, now)
		resp.Next = &next
	}
	return resp
}

type MatchResponse struct {
	ID        uint            `json:"id"`
	OtherUser ProfileResponse `json:"otherUser"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewMatchResponses(views []MatchView, now time.Time) []MatchResponse {
	out := make([]MatchResponse, 0, len(views))
	for _, v := range views {
		out = append(out, MatchResponse{
			ID:        v.ID,
			OtherUser: NewProfileResponse(v.OtherUser, now),
			CreatedAt: v.CreatedAt,
		})
	}
	return out
}
