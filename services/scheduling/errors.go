package scheduling

import "fmt"

type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSchedulingError(msg string) error {
	return &SchedulingError{
		Code:    "schedulingError",
		Message: msg,
	}
}
