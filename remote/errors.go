package remote

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a collaborator failure so that callers never have to
// inspect status codes or message strings themselves.
type Kind int

const (
	// KindNetwork covers timeouts, connectivity and unexpected server
	// failures.
	KindNetwork Kind = iota
	// KindValidation covers malformed or undecodable server payloads.
	KindValidation
	// KindDuplicateAction marks a like-toggle that the server had
	// already applied. It resolves to a definite state and is not a
	// failure from the viewer's perspective.
	KindDuplicateAction
	// KindNotFound marks a missing item.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindDuplicateAction:
		return "duplicate-action"
	case KindNotFound:
		return "not-found"
	}

	return "unknown"
}

// Error is a tagged collaborator failure.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, msg)
}

// Unwrap exposes the underlying failure to errors.Is/As style walking.
func (e Error) Unwrap() error {
	return e.Err
}

func kindOf(err error) (Kind, bool) {
	for err != nil {
		if e, ok := err.(Error); ok {
			return e.Kind, true
		}

		switch v := err.(type) {
		case interface{ Cause() error }:
			err = v.Cause()
		case interface{ Unwrap() error }:
			err = v.Unwrap()
		default:
			return 0, false
		}
	}

	return 0, false
}

func IsNetwork(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNetwork
}

func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindValidation
}

func IsDuplicateAction(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindDuplicateAction
}

func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

func networkErr(op string, err error) Error {
	return Error{Kind: KindNetwork, Op: op, Err: errors.WithStack(err)}
}

func validationErr(op string, err error) Error {
	return Error{Kind: KindValidation, Op: op, Err: errors.WithStack(err)}
}
