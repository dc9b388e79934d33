package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		expectExit   bool
		expectErr    bool
		expectedPath string
	}{
		{
			name:       "no arguments prints usage and exits cleanly",
			args:       nil,
			expectExit: true,
		},
		{
			name:         "positional path",
			args:         []string{"pipeline.hcl"},
			expectedPath: "pipeline.hcl",
		},
		{
			name:         "pipeline flag",
			args:         []string{"--pipeline", "graphs/"},
			expectedPath: "graphs/",
		},
		{
			name:         "shorthand flag",
			args:         []string{"-p", "p.hcl"},
			expectedPath: "p.hcl",
		},
		{
			name:         "flag wins over positional",
			args:         []string{"--pipeline", "flagged.hcl", "positional.hcl"},
			expectedPath: "flagged.hcl",
		},
		{
			name:      "error - invalid log format",
			args:      []string{"--log-format", "xml", "p.hcl"},
			expectErr: true,
		},
		{
			name:      "error - invalid log level",
			args:      []string{"--log-level", "loud", "p.hcl"},
			expectErr: true,
		},
		{
			name:      "error - unknown flag",
			args:      []string{"--frobnicate"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)

			if tc.expectExit {
				assert.True(t, shouldExit)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tc.expectedPath, cfg.PipelinePath)
			assert.Equal(t, "text", cfg.LogFormat)
			assert.Equal(t, "info", cfg.LogLevel)
		})
	}
}
