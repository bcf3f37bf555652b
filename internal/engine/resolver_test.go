package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var liveDevices = []LiveInputDevice{
	{ID: 1, Name: "ELAN9038:00"},
	{ID: 2, Name: "Touch-B"},
}

func TestResolve(t *testing.T) {
	live := []LiveInputDevice{
		{ID: 10, Name: "ELAN9038:00 04F3:2A1C"},
		{ID: 11, Name: "ELAN9038:00 04F3:2A1C Pen (0)"},
		{ID: 14, Name: "AT Translated Set 2 keyboard"},
		{ID: 20, Name: "Touch-B"},
		{ID: 21, Name: "Touch-B"},
	}

	tests := []struct {
		name  string
		rules []DeviceRule
		want  []ResolvedDevice
	}{
		{
			name: "no rules",
			want: []ResolvedDevice{},
		},
		{
			name:  "substring matches every device in enumeration order",
			rules: []DeviceRule{SubstringMatch("ELAN9038", true)},
			want: []ResolvedDevice{
				{Name: "ELAN9038:00 04F3:2A1C", ID: 10, FailOk: true},
				{Name: "ELAN9038:00 04F3:2A1C Pen (0)", ID: 11, FailOk: true},
			},
		},
		{
			name:  "exact takes first of duplicate names",
			rules: []DeviceRule{ExactName("Touch-B", false)},
			want:  []ResolvedDevice{{Name: "Touch-B", ID: 20}},
		},
		{
			name: "rule order is preserved",
			rules: []DeviceRule{
				ExactName("Touch-B", false),
				SubstringMatch("Pen", true),
			},
			want: []ResolvedDevice{
				{Name: "Touch-B", ID: 20},
				{Name: "ELAN9038:00 04F3:2A1C Pen (0)", ID: 11, FailOk: true},
			},
		},
		{
			name:  "substring is case sensitive",
			rules: []DeviceRule{SubstringMatch("keyboard", false)},
			want:  []ResolvedDevice{{Name: "AT Translated Set 2 keyboard", ID: 14}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.rules, live)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_SubstringSingleMatch(t *testing.T) {
	got, err := Resolve([]DeviceRule{SubstringMatch("ELAN9038", false)}, liveDevices)
	require.NoError(t, err)
	assert.Equal(t, []ResolvedDevice{{Name: "ELAN9038:00", ID: 1, FailOk: false}}, got)
}

func TestResolve_ExactNameNotFound(t *testing.T) {
	_, err := Resolve([]DeviceRule{ExactName("Ghost-Device", false)}, liveDevices)
	require.ErrorIs(t, err, ErrExactNameNotFound)

	var re *ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Ghost-Device", re.Pattern)
	assert.Empty(t, re.Suggestion)
}

func TestResolve_ExactNameSuggestion(t *testing.T) {
	_, err := Resolve([]DeviceRule{ExactName("Touch-8", false)}, liveDevices)

	var re *ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Touch-B", re.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "Touch-B"`)
}

func TestResolve_SubstringNoMatch(t *testing.T) {
	_, err := Resolve([]DeviceRule{
		SubstringMatch("ELAN", false),
		SubstringMatch("Wacom", true),
	}, liveDevices)
	require.ErrorIs(t, err, ErrSubstringNoMatch)

	var re *ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Wacom", re.Pattern)
}

func TestResolve_UnsupportedMode(t *testing.T) {
	_, err := Resolve([]DeviceRule{
		ExactName("Touch-B", false),
		{Mode: MatchMode(7), Pattern: "ELAN"},
	}, liveDevices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported match mode MatchMode(7)")
}

func TestMatchMode_String(t *testing.T) {
	assert.Equal(t, "name", MatchExact.String())
	assert.Equal(t, "name_contains", MatchSubstring.String())
	assert.Equal(t, "MatchMode(7)", MatchMode(7).String())
}

func TestScreenConfig_ResolveNamesScreen(t *testing.T) {
	sc := ScreenConfig{Name: "eDP-1", Rules: []DeviceRule{ExactName("Ghost-Device", false)}}
	_, err := sc.Resolve(liveDevices)

	var re *ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "eDP-1", re.Screen)
	assert.Contains(t, err.Error(), "screen eDP-1")
}

func BenchmarkResolve(b *testing.B) {
	live := make([]LiveInputDevice, 0, 64)
	for i := 0; i < 64; i++ {
		live = append(live, LiveInputDevice{ID: i, Name: "Generic HID device " + string(rune('A'+i%26))})
	}
	live = append(live, LiveInputDevice{ID: 100, Name: "ELAN9038:00 04F3:2A1C"})
	rules := []DeviceRule{SubstringMatch("ELAN9038", false), ExactName("Generic HID device C", true)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Resolve(rules, live)
	}
}
