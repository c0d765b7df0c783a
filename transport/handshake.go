package transport

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// coreProtocolVersion and protoVersion are the fixed first two fields of
// the handshake line (spec §4.8).
const (
	coreProtocolVersion = 1
	protoVersion        = 6
)

// magicCookieKey and magicCookieValue are advisory: go-plugin's host
// verifies them before launching this binary, but this core never checks
// them itself (spec §6).
const (
	magicCookieKey   = "TF_PLUGIN_MAGIC_COOKIE"
	magicCookieValue = "d602bf8f470bc67ca7faa0386276bbdd4330efaf76d1a219cb4d6991ca9872b2"
)

// checkPortEnv validates that the PLUGIN_MIN_PORT/PLUGIN_MAX_PORT
// environment contract is satisfied, even though a Unix domain socket
// makes the port range itself unused (the host validates their presence
// regardless; spec §4.8).
func checkPortEnv() error {
	for _, name := range []string{"PLUGIN_MIN_PORT", "PLUGIN_MAX_PORT"} {
		v, ok := os.LookupEnv(name)
		if !ok {
			return fmt.Errorf("%s not found", name)
		}
		if _, err := strconv.ParseUint(v, 10, 16); err != nil {
			return fmt.Errorf("%s not a valid uint16: %w", name, err)
		}
	}
	return nil
}

// handshakeLine builds the handshake line content (without the trailing
// newline) described at spec §4.8.
func handshakeLine(socketPath string, derCert []byte) string {
	b64Cert := base64.RawStdEncoding.EncodeToString(derCert)
	return fmt.Sprintf("%d|%d|unix|%s|grpc|%s", coreProtocolVersion, protoVersion, socketPath, b64Cert)
}

// writeHandshakeLine writes the handshake line to w, newline-terminated.
func writeHandshakeLine(w io.Writer, socketPath string, derCert []byte) error {
	_, err := fmt.Fprintln(w, handshakeLine(socketPath, derCert))
	return err
}

// printHandshakeLine writes the single handshake line go-plugin's client
// expects to stdout, flushed immediately (spec §4.8). Nothing else may
// ever be written to stdout by this process.
func printHandshakeLine(socketPath string, derCert []byte) error {
	if err := writeHandshakeLine(os.Stdout, socketPath, derCert); err != nil {
		return err
	}
	return os.Stdout.Sync()
}

// socketPath returns the path UnixListener binds: <tmpdir>/plugin.
func socketPath(tmpDir string) string {
	return filepath.Join(tmpDir, "plugin")
}
