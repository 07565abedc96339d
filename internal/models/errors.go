package models

import "fmt"

// ErrorKind tags a classified failure. Every failure that crosses a
// component boundary carries exactly one kind; the HTTP layer maps the
// closed set to response codes in one place.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthorized
	KindNotFound
	KindStore
	KindUpstreamClient
	KindUpstreamServer
	KindUpstreamTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	case KindUpstreamClient:
		return "upstream_client"
	case KindUpstreamServer:
		return "upstream_server"
	case KindUpstreamTransport:
		return "upstream_transport"
	}
	return "unknown"
}

// Error is the classified failure type returned by stores, the profanity
// client and the services. The wrapped cause and any upstream detail are
// for operator logs only; callers of the API never see them.
type Error struct {
	Kind       ErrorKind
	ResourceID int    // set for KindNotFound
	Status     int    // upstream HTTP status for the upstream kinds
	Message    string // upstream error body message, logged only
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: question %d", e.Kind, e.ResourceID)
	case KindUpstreamClient, KindUpstreamServer:
		return fmt.Sprintf("%s: status %d: %s", e.Kind, e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func ValidationError(err error) *Error {
	return &Error{Kind: KindValidation, Err: err}
}

func UnauthorizedError() *Error {
	return &Error{Kind: KindUnauthorized}
}

func NotFoundError(id int) *Error {
	return &Error{Kind: KindNotFound, ResourceID: id}
}

func StoreError(err error) *Error {
	return &Error{Kind: KindStore, Err: err}
}

func UpstreamClientError(status int, message string) *Error {
	return &Error{Kind: KindUpstreamClient, Status: status, Message: message}
}

func UpstreamServerError(status int, message string) *Error {
	return &Error{Kind: KindUpstreamServer, Status: status, Message: message}
}

func UpstreamTransportError(err error) *Error {
	return &Error{Kind: KindUpstreamTransport, Err: err}
}
