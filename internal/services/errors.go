package services

// Service errors
var (
	ErrInvalidPlayerName = &ServiceError{Message: "player name must be between 1 and 20 characters"}
	ErrInvalidScore      = &ServiceError{Message: "score must be between 0 and 999999999"}
	ErrDayLocked         = &ServiceError{Message: "day is not yet playable"}
	ErrDayPrelaunch      = &ServiceError{Message: "day is before the epoch"}
	ErrDayNotFound       = &ServiceError{Message: "no seed is published for this day"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
