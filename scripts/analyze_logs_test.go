package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeStoreLog(t *testing.T) {
	logs := strings.Join([]string{
		`INFO: 2024/05/01 10:00:00 payment_record_store.go:80: Store: INSERT payment_session ps_1 - creating`,
		`INFO: 2024/05/01 10:00:00 payment_record_store.go:84: Store: SUCCESS payment_session ps_1 - created`,
		`INFO: 2024/05/01 10:00:01 payment_record_store.go:300: Store: CONFLICT payment_session ps_1 - already exists`,
		`INFO: 2024/05/01 10:00:02 payment_record_store.go:288: Store: NOT_FOUND refund_session rf_9 - status update target missing`,
		`DEBUG: 2024/05/01 10:00:03 payment_record_store.go:270: Store: IGNORED void_session vd_1 - status "done"`,
		`INFO: 2024/05/01 10:00:04 logger.go:90: Request: POST /v1/payment-sessions from 127.0.0.1 - Status: 409 - Duration: 1ms`,
		`INFO: 2024/05/01 10:00:05 logger.go:90: Request: GET /v1/payment-sessions from 127.0.0.1 - Status: 200 - Duration: 1ms`,
	}, "\n")

	stats := newLogStats()
	analyzeStoreLog(strings.NewReader(logs), stats)

	assert.Equal(t, 1, stats.Operations["INSERT payment_session"])
	assert.Equal(t, 1, stats.Conflicts)
	assert.Equal(t, 1, stats.NotFound)
	assert.Equal(t, 1, stats.IgnoredStatuses)
	assert.Equal(t, 1, stats.FailedRequests)
}

func TestAnalyzeErrorLog(t *testing.T) {
	logs := strings.Join([]string{
		`ERROR: 2024/05/01 10:00:00 payment_controller.go:40: Failed to create payment session ps_1: Duplicate entry`,
		`ERROR: 2024/05/01 10:00:01 payment_controller.go:40: Failed to create payment session ps_2: Duplicate entry`,
		`ERROR: 2024/05/01 10:00:02 refund_controller.go:20: Failed to create refund session for payment ps_3: Record not found`,
	}, "\n")

	stats := newLogStats()
	analyzeErrorLog(strings.NewReader(logs), stats)

	assert.Equal(t, 3, stats.TotalErrors)
	assert.Equal(t, 2, stats.ErrorPatterns["Failed to create payment"])
	assert.Equal(t, 1, stats.ErrorPatterns["Failed to create refund"])

	var out bytes.Buffer
	printReport(&out, stats)
	assert.Contains(t, out.String(), "Total Errors: 3")
	assert.Contains(t, out.String(), "Failed to create payment: 2 occurrences")
}
