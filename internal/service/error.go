package service

// Error carries a billing error code alongside its cause. The fiber error
// handler maps the code to an HTTP status and a user-facing message; the
// cause stays in the logs.
type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{
		Code:  code,
		Cause: cause,
	}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
