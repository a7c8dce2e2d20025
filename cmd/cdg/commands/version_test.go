package commands

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		resetViper(t)

		stdout, _, err := execute(NewVersionCommand("1.2.3", "abc123", "2024-05-01"))
		require.NoError(t, err)

		assert.Contains(t, stdout, "1.2.3")
		assert.Contains(t, stdout, "abc123")
		assert.Contains(t, stdout, runtime.Version())
	})

	t.Run("json", func(t *testing.T) {
		resetViper(t)
		viper.Set(KeyOutput, constants.FormatJSON)

		stdout, _, err := execute(NewVersionCommand("1.2.3", "abc123", "2024-05-01"))
		require.NoError(t, err)

		var info map[string]string
		require.NoError(t, json.Unmarshal([]byte(stdout), &info))
		assert.Equal(t, "1.2.3", info["version"])
		assert.Equal(t, "abc123", info["commit"])
		assert.Equal(t, "2024-05-01", info["built"])
		assert.Equal(t, runtime.Version(), info["go_version"])
	})

	t.Run("rejects arguments", func(t *testing.T) {
		resetViper(t)

		_, _, err := execute(NewVersionCommand("dev", "none", "unknown"), "extra")
		require.Error(t, err)
	})
}
