package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatusIsValid(t *testing.T) {
	for _, s := range []SessionStatus{StatusPending, StatusResolve, StatusReject} {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range []SessionStatus{"", "Pending", "resolved", "rejected", "void", " pending"} {
		assert.False(t, s.IsValid(), s)
	}
}
