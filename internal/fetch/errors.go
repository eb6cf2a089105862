package fetch

import "fmt"

// ErrorKind classifies a failed fetch for the retry policy and for the
// view-state rendering.
type ErrorKind int

const (
	// KindNetwork means the request never produced a response
	// (connection unreachable). Never auto-retried.
	KindNetwork ErrorKind = iota
	// KindClient is an HTTP status in [400,500]. Never auto-retried;
	// the user can retry manually.
	KindClient
	// KindTransient covers everything else and is retried up to the
	// configured cap before surfacing.
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindClient:
		return "client"
	default:
		return "transient"
	}
}

// Error is a classified fetch failure.
type Error struct {
	Kind   ErrorKind
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s error fetching %s: status %d: %v", e.Kind, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s error fetching %s: %v", e.Kind, e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
