package step

import (
	"bytes"
	"encoding/json"
)

// None travels as null on the wire.
func (id Id) MarshalJSON() ([]byte, error) {
	if id == None {
		return []byte("null"), nil
	}
	return json.Marshal(int(id))
}

func (id *Id) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*id = None
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*id = Id(v)
	return nil
}
