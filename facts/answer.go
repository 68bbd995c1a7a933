package facts

import (
	"bytes"
	"encoding/json"
)

// Answer is the response to a Yes/No/TBD question.
type Answer int

const (
	Unanswered Answer = iota
	Yes
	No
	TBD
)

// ParseAnswer is exact and case sensitive. Anything other than the three
// literals is Unanswered.
func ParseAnswer(s string) Answer {
	switch s {
	case "Yes":
		return Yes
	case "No":
		return No
	case "TBD":
		return TBD
	default:
		return Unanswered
	}
}

func (a Answer) String() string {
	switch a {
	case Yes:
		return "Yes"
	case No:
		return "No"
	case TBD:
		return "TBD"
	default:
		return ""
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a == Unanswered {
		return []byte("null"), nil
	}
	return json.Marshal(a.String())
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Unanswered
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseAnswer(s)
	return nil
}
