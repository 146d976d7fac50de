package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	Init(false, false)
	assert.False(t, Verbose)
	assert.False(t, JSONMode)

	Init(true, true)
	assert.True(t, Verbose)
	assert.True(t, JSONMode)

	Init(false, false)
}

func TestNoColor(t *testing.T) {
	orig, hadOrig := os.LookupEnv("NO_COLOR")
	defer func() {
		if hadOrig {
			os.Setenv("NO_COLOR", orig)
		} else {
			os.Unsetenv("NO_COLOR")
		}
	}()

	os.Unsetenv("NO_COLOR")
	assert.False(t, NoColor())

	os.Setenv("NO_COLOR", "1")
	assert.True(t, NoColor())

	os.Setenv("NO_COLOR", "")
	assert.True(t, NoColor()) // any value, even empty, means no color
}

func TestJSONResult(t *testing.T) {
	tests := []struct {
		name     string
		result   JSONResult
		wantKeys []string
	}{
		{
			name:     "ok with data",
			result:   JSONResult{Status: "ok", Data: map[string]string{"key": "value"}},
			wantKeys: []string{"status", "data"},
		},
		{
			name:     "error",
			result:   JSONResult{Status: "error", Error: "something failed"},
			wantKeys: []string{"status", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			err := enc.Encode(tt.result)
			require.NoError(t, err)

			var decoded map[string]interface{}
			err = json.Unmarshal(buf.Bytes(), &decoded)
			require.NoError(t, err)

			for _, key := range tt.wantKeys {
				assert.Contains(t, decoded, key)
			}
			assert.Equal(t, tt.result.Status, decoded["status"])
		})
	}
}

func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewError("something broke")
		assert.Equal(t, "something broke", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := WrapError(cause, "writing file")
		assert.Equal(t, "writing file: permission denied", err.Error())
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("with fix", func(t *testing.T) {
		err := NewErrorWithFix("no manifest found", "run 'pagegen init' first")
		assert.Equal(t, "no manifest found", err.Error())
		assert.Equal(t, "run 'pagegen init' first", err.Fix)
	})
}
