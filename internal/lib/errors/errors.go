package errors

type HttpError struct {
	Reason string `json:"reason"`
}

func NewHttpError(reason string) HttpError {
	return HttpError{Reason: reason}
}

type ValidationHttpError struct {
	Reason string   `json:"reason"`
	Errors []string `json:"errors"`
}

func NewValidationHttpError(reason string, codes []string) ValidationHttpError {
	if codes == nil {
		codes = make([]string, 0)
	}
	return ValidationHttpError{Reason: reason, Errors: codes}
}
