package remote

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// The backend reports an already-applied like toggle through message
// text rather than a distinct status code. Every message-string
// inspection lives in this file; the rest of the engine only ever sees
// the tagged error kinds.

func translateLikeResponse(op string, status int, body []byte) (LikeResult, error) {
	var result LikeResult
	decodeErr := json.Unmarshal(body, &result)

	if liked, ok := duplicateState(result.Message); ok {
		// The toggle had already been applied. The payload's implied
		// final state is authoritative.
		result.Liked = liked

		return result, Error{
			Kind:    KindDuplicateAction,
			Op:      op,
			Message: result.Message,
			Err:     errors.New(result.Message),
		}
	}

	switch {
	case status == http.StatusNotFound:
		return LikeResult{}, Error{Kind: KindNotFound, Op: op, Message: result.Message, Err: errors.New("not found")}
	case status < 200 || status > 299:
		return LikeResult{}, Error{
			Kind:    KindNetwork,
			Op:      op,
			Message: result.Message,
			Err:     errors.Errorf("unexpected status %d", status),
		}
	}

	if decodeErr != nil {
		return LikeResult{}, validationErr(op, errors.Wrap(decodeErr, "decoding like response"))
	}

	return result, nil
}

// duplicateState maps the known duplicate-toggle message variants to the
// final like state they imply.
func duplicateState(message string) (liked, ok bool) {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "already liked"):
		return true, true
	case strings.Contains(msg, "already removed"),
		strings.Contains(msg, "already unliked"),
		strings.Contains(msg, "not liked"):
		return false, true
	}

	return false, false
}
