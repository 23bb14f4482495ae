package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/morekong/pkg"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    config
		wantErr bool
	}{
		{name: "empty", input: "", want: config{}},
		{
			name:  "scalars",
			input: "host: example.com\nport: 8080\ndebug: true\nratio: 0.5\n",
			want: config{
				"host":  "example.com",
				"port":  "8080",
				"debug": true,
				"ratio": "0.5",
			},
		},
		{
			name:  "negative_number",
			input: "port: -1\n",
			want:  config{"port": "-1"},
		},
		{
			name:  "sequence",
			input: "tags: [a, 2, c]\n",
			want:  config{"tags": "a,2,c"},
		},
		{name: "not_a_mapping", input: "- a\n- b\n", wantErr: true},
		{name: "malformed", input: "port: [1, 2\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := load(strings.NewReader(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, pkg.ErrConfigParse)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, r)
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	t.Parallel()

	r := config{
		"log-format": "json",
		"log_time":   "Kitchen",
		"port":       "80",
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-format", "json"},
		{"log-time", "Kitchen"},
		{"port", "80"},
		{"host", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()

			flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

			got, err := r.Resolve(nil, nil, flag)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
