// Package likes parses the interest tokens users attach to their profile.
//
// Clients send likes in one of three shapes: a JSON list, a string holding a
// JSON list, or a comma separated string. Input captures which shape was
// received and Normalize turns any of them into a clean token list.
package likes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const MaxLikes = 5

var (
	ErrTooMany      = fmt.Errorf("at most %d likes", MaxLikes)
	ErrInvalidToken = errors.New("likes must be tokens without spaces (e.g. 'food','songs','gym')")
	ErrInvalidShape = errors.New("likes must be list / comma string / JSON list")
)

var tokenRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type kind uint8

const (
	kindEmpty kind = iota
	kindList
	kindText
)

// Input is the tagged union of accepted likes shapes.
type Input struct {
	kind kind
	list []any
	text string
}

func FromList(values []string) Input {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	return Input{kind: kindList, list: list}
}

func FromText(text string) Input {
	return Input{kind: kindText, text: text}
}

func (in Input) IsEmpty() bool {
	return in.kind == kindEmpty
}

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*in = Input{}
		return nil
	}

	switch data[0] {
	case '[':
		var list []any
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*in = Input{kind: kindList, list: list}
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*in = FromText(text)
	default:
		return ErrInvalidShape
	}
	return nil
}

func (in Input) MarshalJSON() ([]byte, error) {
	switch in.kind {
	case kindList:
		return json.Marshal(in.list)
	case kindText:
		return json.Marshal(in.text)
	default:
		return []byte("null"), nil
	}
}

// Normalize validates the input and returns lowercase, deduplicated tokens in
// their original order.
func Normalize(in Input) ([]string, error) {
	var items []any

	switch in.kind {
	case kindEmpty:
		return []string{}, nil
	case kindList:
		items = in.list
	case kindText:
		items = parseText(in.text)
	}

	if len(items) > MaxLikes {
		return nil, ErrTooMany
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || !tokenRegex.MatchString(s) {
			return nil, ErrInvalidToken
		}
		s = strings.ToLower(s)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}

// parseText tries a JSON list first and falls back to comma separated values.
func parseText(text string) []any {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var list []any
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		return list
	}

	var items []any
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
