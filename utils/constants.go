package utils

// Application constants
const (
	// Application name
	AppName = "PaymentRecords"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default log directory
	DefaultLogDir = "logs"

	// Default database settings
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "payments"
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBSSLMode  = "disable"

	// Default connection pool sizes
	DefaultMaxOpenConns = 25
	DefaultMaxIdleConns = 5

	// RecentSessionsLimit is the number of payment sessions returned by the recent list
	RecentSessionsLimit = 25
)

// Error messages
const (
	ErrRecordNotFound = "Record not found"
	ErrDuplicateEntry = "Duplicate entry"
	ErrInvalidStatus  = "Status must be one of pending, resolve or reject"
	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgCreateSuccess = "Created successfully"
	MsgUpdateSuccess = "Updated successfully"
	MsgFetchSuccess  = "Fetched successfully"
	MsgStatusIgnored = "Status ignored"
	MsgNoContent     = "No configuration for session"
)
