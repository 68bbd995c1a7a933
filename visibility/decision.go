package visibility

import (
	"encoding/json"
	"fmt"
)

type State int

const (
	Hidden State = iota
	Enabled
	Disabled
)

func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "hidden"
	}
}

type Decision struct {
	State   State
	Message string
}

func (d Decision) Visible() bool {
	return d.State != Hidden
}

func (d Decision) Enabled() bool {
	return d.State == Enabled
}

func visibleIf(ok bool) Decision {
	if ok {
		return Decision{State: Enabled}
	}
	return Decision{State: Hidden}
}

func editableIf(ok bool) Decision {
	if ok {
		return Decision{State: Enabled}
	}
	return Decision{State: Disabled}
}

type decisionJSON struct {
	Visible bool   `json:"visible"`
	Enabled bool   `json:"enabled"`
	Message string `json:"message,omitempty"`
}

func (d Decision) MarshalJSON() ([]byte, error) {
	return json.Marshal(decisionJSON{Visible: d.Visible(), Enabled: d.Enabled(), Message: d.Message})
}

func (d *Decision) UnmarshalJSON(data []byte) error {
	var v decisionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case !v.Visible && v.Enabled:
		return fmt.Errorf("decision can not be hidden and enabled")
	case !v.Visible:
		d.State = Hidden
	case v.Enabled:
		d.State = Enabled
	default:
		d.State = Disabled
	}
	d.Message = v.Message
	return nil
}

// Decisions is keyed by UI element name.
type Decisions map[string]Decision
