package transport

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPortEnv(t *testing.T) {
	t.Run("missing min port", func(t *testing.T) {
		t.Setenv("PLUGIN_MIN_PORT", "")
		os.Unsetenv("PLUGIN_MIN_PORT")
		t.Setenv("PLUGIN_MAX_PORT", "2000")
		assert.Error(t, checkPortEnv())
	})

	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("PLUGIN_MIN_PORT", "not-a-number")
		t.Setenv("PLUGIN_MAX_PORT", "2000")
		assert.Error(t, checkPortEnv())
	})

	t.Run("valid ports", func(t *testing.T) {
		t.Setenv("PLUGIN_MIN_PORT", "1000")
		t.Setenv("PLUGIN_MAX_PORT", "2000")
		assert.NoError(t, checkPortEnv())
	})
}

func TestHandshakeLineFormat(t *testing.T) {
	t.Parallel()

	line := handshakeLine("/tmp/abc/plugin", []byte{0x01, 0x02, 0x03})
	parts := strings.Split(line, "|")
	require.Len(t, parts, 6)

	assert.Equal(t, strconv.Itoa(coreProtocolVersion), parts[0])
	assert.Equal(t, strconv.Itoa(protoVersion), parts[1])
	assert.Equal(t, "unix", parts[2])
	assert.Equal(t, "/tmp/abc/plugin", parts[3])
	assert.Equal(t, "grpc", parts[4])
	assert.NotContains(t, parts[5], "=") // standard alphabet, no padding
}

func TestWriteHandshakeLineIsNewlineTerminated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeHandshakeLine(&buf, "/tmp/plugin", []byte{0xaa}))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestSocketPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/tmp/x/plugin", socketPath("/tmp/x"))
}
