package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionTagIsCaseInsensitive(t *testing.T) {
	for _, tag := range []string{"fold", "FOLD", "Fold", "fOlD"} {
		a, err := ParseAction([]byte(`{"action":"` + tag + `"}`))
		require.NoError(t, err)
		assert.Equal(t, Fold(), a)
	}
}

func TestParseActionRaiseRequiresBareInteger(t *testing.T) {
	cases := []struct {
		name string
		body string
		ok   bool
	}{
		{"plain integer", `{"action":"raise","amount":50}`, true},
		{"zero", `{"action":"raise","amount":0}`, true},
		{"quoted string", `{"action":"raise","amount":"50"}`, false},
		{"float", `{"action":"raise","amount":50.5}`, false},
		{"scientific notation", `{"action":"raise","amount":5e1}`, false},
		{"negative", `{"action":"raise","amount":-1}`, false},
		{"missing", `{"action":"raise"}`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseAction([]byte(c.body))
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseActionRejectsUnknownTag(t *testing.T) {
	_, err := ParseAction([]byte(`{"action":"allin"}`))
	assert.Error(t, err)
}

func TestParseActionRejectsMalformedJSON(t *testing.T) {
	_, err := ParseAction([]byte(`not json`))
	assert.Error(t, err)
}

// TestActionWireRoundTrip is the P7 property: for every action kind,
// ParseAction(EmitAction(a)) reproduces a exactly.
func TestActionWireRoundTrip(t *testing.T) {
	actions := []HandAction{Fold(), Check(), Call(), Raise(0), Raise(123), Raise(1_000_000)}
	for _, a := range actions {
		got, err := ParseAction(EmitAction(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}
