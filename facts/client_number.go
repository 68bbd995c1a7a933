package facts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ClientNumber is a client or bill-to client identifier as the backend sends
// it: a string, a number, or null. A number 0 is a real identifier; only a
// missing value or an empty string counts as absent.
type ClientNumber struct {
	value string
	set   bool
}

func NewClientNumber(v string) ClientNumber {
	return ClientNumber{value: v, set: true}
}

func (c ClientNumber) Present() bool {
	return c.set && c.value != ""
}

func (c ClientNumber) String() string {
	return c.value
}

func (c ClientNumber) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return json.Marshal(c.value)
}

func (c *ClientNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ClientNumber{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = NewClientNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = NewClientNumber(n.String())
	return nil
}

// clientNumberOf converts a value looked up from a decoded JSON document.
func clientNumberOf(v any) ClientNumber {
	switch t := v.(type) {
	case nil:
		return ClientNumber{}
	case string:
		return NewClientNumber(t)
	case float64:
		return NewClientNumber(strconv.FormatFloat(t, 'f', -1, 64))
	case json.Number:
		return NewClientNumber(t.String())
	default:
		return NewClientNumber(strings.TrimSpace(fmt.Sprintf("%v", v)))
	}
}

// HasBillToClient reports whether a bill-to client has been chosen.
func HasBillToClient(n ClientNumber) bool {
	return n.Present()
}
