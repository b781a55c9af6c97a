package models

// SessionStatus is the lifecycle status shared by payment, refund, capture and void sessions.
type SessionStatus string

// Session status constants
const (
	StatusPending SessionStatus = "pending"
	StatusResolve SessionStatus = "resolve"
	StatusReject  SessionStatus = "reject"
)

// IsValid reports whether s is one of pending, resolve or reject.
func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusResolve, StatusReject:
		return true
	}
	return false
}
