package likes_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghaniswara/swipe-match/pkg/likes"
)

func decode(t *testing.T, raw string) likes.Input {
	t.Helper()
	var in likes.Input
	require.NoError(t, json.Unmarshal([]byte(raw), &in))
	return in
}

func TestNormalizeShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json list", `["Food","songs","gym"]`, []string{"food", "songs", "gym"}},
		{"json string list", `"[\"food\",\"songs\"]"`, []string{"food", "songs"}},
		{"comma string", `"food, songs ,gym"`, []string{"food", "songs", "gym"}},
		{"single token string", `"hiking"`, []string{"hiking"}},
		{"null", `null`, []string{}},
		{"empty string", `""`, []string{}},
		{"empty list", `[]`, []string{}},
		{"dedupe keeps first", `["Gym","gym","food"]`, []string{"gym", "food"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := likes.Normalize(decode(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name string
		in   likes.Input
		err  error
	}{
		{"too many", likes.FromList([]string{"a", "b", "c", "d", "e", "f"}), likes.ErrTooMany},
		{"space in token", likes.FromList([]string{"rock climbing"}), likes.ErrInvalidToken},
		{"punctuation", likes.FromText("food,so-ngs"), likes.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := likes.Normalize(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNormalizeRejectsNonStringElements(t *testing.T) {
	_, err := likes.Normalize(decode(t, `["food", 3]`))
	assert.ErrorIs(t, err, likes.ErrInvalidToken)
}

func TestUnmarshalRejectsObjects(t *testing.T) {
	var in likes.Input
	err := json.Unmarshal([]byte(`{"food":true}`), &in)
	assert.Error(t, err)
}

func TestMarshalRoundTripsShape(t *testing.T) {
	body, err := json.Marshal(likes.FromText("food,gym"))
	require.NoError(t, err)
	assert.JSONEq(t, `"food,gym"`, string(body))

	body, err = json.Marshal(likes.Input{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(body))
}
