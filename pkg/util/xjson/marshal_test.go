package xjson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRange struct {
	Prefix string `json:"prefix"`
	First  string `json:"first"`
	Last   string `json:"last,omitempty"`
}

func TestPrettyE(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{
			name:  "struct",
			input: testRange{Prefix: "192.0.2.0/24", First: "192.0.2.0", Last: "192.0.2.255"},
			want:  "{\n  \"prefix\": \"192.0.2.0/24\",\n  \"first\": \"192.0.2.0\",\n  \"last\": \"192.0.2.255\"\n}\n",
		},
		{
			name:  "empty slice",
			input: []testRange{},
			want:  "[]\n",
		},
		{
			name:  "nil",
			input: nil,
			want:  "null\n",
		},
		{
			name:    "unsupported",
			input:   make(chan int),
			wantErr: true,
		},
		{
			name:    "nan",
			input:   math.NaN(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyE(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMarshal)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "{\n  \"prefix\": \"::/0\",\n  \"first\": \"::\"\n}", Pretty(testRange{Prefix: "::/0", First: "::"}))
	assert.Contains(t, Pretty(make(chan int)), "<marshal error:")
}

func TestYAML(t *testing.T) {
	got, err := YAML([]testRange{
		{Prefix: "192.0.2.0/24", First: "192.0.2.0", Last: "192.0.2.255"},
		{Prefix: "198.51.100.7/32", First: "198.51.100.7"},
	})
	require.NoError(t, err)
	assert.Equal(t, `- first: 192.0.2.0
  last: 192.0.2.255
  prefix: 192.0.2.0/24
- first: 198.51.100.7
  prefix: 198.51.100.7/32
`, string(got))

	empty, err := YAML([]testRange{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))

	_, err = YAML(make(chan int))
	assert.ErrorIs(t, err, ErrMarshal)
}
