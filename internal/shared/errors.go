package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// domain errors surfaced to users
const (
	ErrEventNotFound = Error("event not found")
	ErrEventClosed   = Error("event is closed")
)

// repository errors
const (
	ErrJobNotFound        = Error("job listing not found")
	ErrTeamMemberNotFound = Error("team member not found")
	ErrContentNotFound    = Error("content item not found")
)

// auth errors
const ErrInvalidCredentials = Error("invalid credentials")
