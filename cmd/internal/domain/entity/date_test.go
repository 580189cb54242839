package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := NewDate(2024, time.March, 15)

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "dotted", raw: "15.03.2024"},
		{name: "iso", raw: "2024-03-15"},
		{name: "surrounding spaces", raw: "  2024-03-15 "},
		{name: "rfc3339 keeps date part", raw: "2024-03-15T18:30:00Z"},
		{name: "empty", raw: "", wantErr: true},
		{name: "swapped dotted", raw: "2024.03.15", wantErr: true},
		{name: "impossible day", raw: "31.02.2024", wantErr: true},
		{name: "garbage", raw: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, "2024-03-15", got.String())
		})
	}
}

func TestParseDateNormalizationIsIdempotent(t *testing.T) {
	first, err := ParseDate("15.03.2024")
	require.NoError(t, err)

	second, err := ParseDate(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDateScan(t *testing.T) {
	want := NewDate(2024, time.March, 15)

	inputs := []any{
		"2024-03-15",
		[]byte("2024-03-15"),
		"2024-03-15 00:00:00+00:00",
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
	for _, in := range inputs {
		var d Date
		require.NoError(t, d.Scan(in), "input %v", in)
		assert.Equal(t, want, d)
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.January, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", v)
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		At Date `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"05.01.2024"}`), &payload))
	assert.Equal(t, NewDate(2024, time.January, 5), payload.At)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-01-05"}`, string(out))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("client42", PrefixClient))
	assert.False(t, HasPrefix("client", PrefixClient))
	assert.False(t, HasPrefix("executor1", PrefixClient))
	assert.True(t, HasPrefix("sample_contract1", PrefixSampleContract))
}
