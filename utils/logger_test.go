package utils

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggers(t *testing.T) {
	t.Helper()
	info, errLog, debug := InfoLogger, ErrorLogger, DebugLogger
	t.Cleanup(func() {
		InfoLogger, ErrorLogger, DebugLogger = info, errLog, debug
	})
}

func TestInitLoggerCreatesDatedFiles(t *testing.T) {
	resetLoggers(t)
	dir := t.TempDir()

	require.NoError(t, InitLogger(dir))
	LogStore("INSERT", "payment_session", "ps_1", "creating")

	timestamp := time.Now().Format("2006-01-02")
	for _, level := range []string{"info", "error", "debug"} {
		_, err := os.Stat(filepath.Join(dir, level+"-"+timestamp+".log"))
		assert.NoError(t, err, level)
	}
}

func TestInitLoggerFailsWhenLogFileCannotBeOpened(t *testing.T) {
	resetLoggers(t)
	InfoLogger, ErrorLogger, DebugLogger = nil, nil, nil
	dir := t.TempDir()

	// a directory in place of the debug file makes the last open fail
	timestamp := time.Now().Format("2006-01-02")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "debug-"+timestamp+".log"), 0755))

	err := InitLogger(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debug")
	assert.Nil(t, InfoLogger)
	assert.Nil(t, ErrorLogger)
	assert.Nil(t, DebugLogger)
}

func TestLogStoreLayout(t *testing.T) {
	resetLoggers(t)
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)

	LogStore("UPDATE", "refund_session", "rf_1", "status resolve")
	assert.Equal(t, "INFO: Store: UPDATE refund_session rf_1 - status resolve", strings.TrimSpace(buf.String()))
}
