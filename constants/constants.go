package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Error messages
const (
	ErrUnexpected         = "Unexpected error"
	ErrInvalidCode        = "Invalid QR code"
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserNotFound       = "User not found"
	ErrInvalidFile        = "Invalid file"
	ErrFileRequired       = "File is required"
	ErrEmailExists        = "Email already exists"
)
