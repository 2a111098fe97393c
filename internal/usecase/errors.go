package usecase

import "errors"

// ErrorKind is the closed set of failure kinds this API can produce. Handlers
// map kinds to status codes instead of sniffing error shapes.
type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindIngestionFailure  ErrorKind = "INGESTION_FAILURE"
	KindBulkDeleteFailure ErrorKind = "BULK_DELETE_FAILURE"
	KindEnrichmentFailure ErrorKind = "ENRICHMENT_FAILURE"
	KindMessageFailure    ErrorKind = "MESSAGE_FAILURE"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, logged but never sent to the caller
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf extracts the kind from an error chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
