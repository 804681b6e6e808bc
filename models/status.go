package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the decision a user has made about a dog.
// The zero value is Undecided, which is also what an absent ledger row means.
type Status uint8

const (
	Undecided Status = iota
	Liked
	Disliked
)

// ParseStatus accepts the URL words (liked, disliked, undecided) and the
// storage codes (l, d, u). Unrecognized tokens fall back to Undecided.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "liked", "l":
		return Liked
	case "disliked", "d":
		return Disliked
	default:
		return Undecided
	}
}

func (s Status) String() string {
	switch s {
	case Liked:
		return "liked"
	case Disliked:
		return "disliked"
	default:
		return "undecided"
	}
}

// Code is the single-letter form persisted in user_dogs.status.
func (s Status) Code() string {
	switch s {
	case Liked:
		return "l"
	case Disliked:
		return "d"
	default:
		return "u"
	}
}

func (s Status) Value() (driver.Value, error) {
	return s.Code(), nil
}

func (s *Status) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*s = ParseStatus(v)
	case []byte:
		*s = ParseStatus(string(v))
	case nil:
		*s = Undecided
	default:
		return fmt.Errorf("cannot scan %T into Status", src)
	}
	return nil
}

// GormDataType keeps the column a short varchar instead of an integer.
func (Status) GormDataType() string {
	return "varchar(2)"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}
