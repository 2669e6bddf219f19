package app

type LogErrorCode string

const (
	LogErrInvalid         LogErrorCode = "INVALID_LOG"
	LogErrProfileNotFound LogErrorCode = "PROFILE_NOT_FOUND"
)

// LogError reports a rejected log or weight entry.
type LogError struct {
	Code    LogErrorCode
	Message string
}

func (e *LogError) Error() string {
	return string(e.Code) + ": " + e.Message
}
