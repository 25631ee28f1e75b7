package text

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string passes through", "hourly", "hourly"},
		{"integral float drops fraction", float64(3), "3"},
		{"fractional float keeps digits", 2.5, "2.5"},
		{"int", 7, "7"},
		{"json number", json.Number("42"), "42"},
		{"bool", true, "true"},
		{"nil degrades", nil, ""},
		{"object degrades", map[string]any{"a": 1}, ""},
		{"array degrades", []any{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.input))
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"yes", "yes", true},
		{"y", "Y", true},
		{"one", "1", true},
		{"on", "on", true},
		{"no", "no", false},
		{"zero string", "0", false},
		{"off", "OFF", false},
		{"empty string", "", false},
		{"other string is truthy", "sometimes", true},
		{"zero number", float64(0), false},
		{"nonzero number", float64(2), true},
		{"nil", nil, false},
		{"object is truthy", map[string]any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bool(tt.input))
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int
		wantOK bool
	}{
		{"float", float64(2), 2, true},
		{"numeric string", "3", 3, true},
		{"float string", "2.9", 2, true},
		{"padded string", " 4 ", 4, true},
		{"garbage string", "vNext", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Int(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
