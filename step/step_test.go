package step

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdOf(t *testing.T) {
	id, err := IdOf("draft")
	require.NoError(t, err)
	require.Equal(t, Id(100037), id)

	id, err = IdOf("internalAccountingForeignDataEntry")
	require.NoError(t, err)
	require.Equal(t, Id(100120), id)

	_, err = IdOf("Draft")
	var unknown UnknownStepNameError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "Draft", unknown.Name)
}

func TestMustIdOfPanicsOnUnknownName(t *testing.T) {
	require.Panics(t, func() { MustIdOf("notAStep") })
	require.NotPanics(t, func() { MustIdOf("secApproval") })
}

func TestIsOneOf(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T){
		"matches named step": func(t *testing.T) {
			require.True(t, IsOneOf(Draft, "secApproval", "draft"))
		},
		"does not match other step": func(t *testing.T) {
			require.False(t, IsOneOf(Draft, "secApproval"))
		},
		"none never matches": func(t *testing.T) {
			require.False(t, IsOneOf(None, "draft"))
		},
		"unknown id never matches": func(t *testing.T) {
			require.False(t, IsOneOf(Id(-1), "draft"))
			require.False(t, IsOneOf(Id(999999), "draft"))
		},
		"unknown name is ignored": func(t *testing.T) {
			require.False(t, IsOneOf(Draft, "notAStep"))
		},
		"empty names": func(t *testing.T) {
			require.False(t, IsOneOf(Draft))
		},
	} {
		t.Run(scenario, fn)
	}
}

func TestAllIsOrderedAndComplete(t *testing.T) {
	all := All()
	require.Len(t, all, len(known))
	for i := 1; i < len(all); i++ {
		require.Less(t, int(all[i-1].Id), int(all[i].Id))
	}
	for _, s := range all {
		require.True(t, s.Id.Known())
		got, ok := Lookup(s.Id)
		require.True(t, ok)
		require.Equal(t, s, got)
	}
}

func TestSets(t *testing.T) {
	only := Only("draft")
	require.Equal(t, 1, only.Len())
	require.True(t, only.Contains(Draft))
	require.False(t, only.Contains(None))

	except := AllExcept("draft", "internalAccountingForeignDataEntry")
	require.Equal(t, len(known)-2, except.Len())
	require.False(t, except.Contains(Draft))
	require.False(t, except.Contains(InternalAccountingForeignDataEntry))
	require.True(t, except.Contains(SecApproval))
	require.False(t, except.Contains(None))
	require.False(t, except.Contains(Id(42)))

	everything := AllExcept()
	for _, s := range All() {
		require.True(t, everything.Contains(s.Id))
	}
	require.Equal(t, All(), everything.Steps())

	var zero Set
	require.False(t, zero.Contains(Draft))
	require.Panics(t, func() { AllExcept("notAStep") })
}

func TestIdJSON(t *testing.T) {
	var payload struct {
		Current Id `json:"currentStepId"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"currentStepId":null}`), &payload))
	require.Equal(t, None, payload.Current)

	require.NoError(t, json.Unmarshal([]byte(`{"currentStepId":100037}`), &payload))
	require.Equal(t, Draft, payload.Current)

	require.Error(t, json.Unmarshal([]byte(`{"currentStepId":"draft"}`), &payload))

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"currentStepId":100037}`, string(data))

	payload.Current = None
	data, err = json.Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"currentStepId":null}`, string(data))
}

func TestString(t *testing.T) {
	require.Equal(t, "draft", Draft.String())
	require.Equal(t, "none", None.String())
	require.Equal(t, "unknown(7)", Id(7).String())
	require.Equal(t, "", Id(7).Name())
}
