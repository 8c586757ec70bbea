package matching

import "fmt"

// UnknownServiceError signals a match request against a service id the
// catalog does not define. Absence of eligible providers is not an error.
type UnknownServiceError struct {
	ServiceID string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("no such service: %s", e.ServiceID)
}
