package catalog

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// The server perturbs the base64 form of the JSON envelope by inserting one
// junk character at index 2. Decode drops that character by position; its
// value is never inspected. This is a wire-format quirk, not encryption.
const scrambleIndex = 2

var (
	// ErrDecode is matched by every DecodeError via errors.Is.
	ErrDecode = errors.New("catalog: decode failed")

	// ErrInvalidEnvelope reports a response missing the expected field.
	ErrInvalidEnvelope = errors.New("catalog: invalid response envelope")
)

// DecodeError describes why an encoded envelope could not be decoded.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog: decode failed: %s: %v", e.Reason, e.Err)
	}
	return "catalog: decode failed: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Encode serializes the envelope to JSON, base64-encodes it, and inserts the
// scramble character. Decode is its exact inverse.
func Encode(env Envelope) (string, error) {
	if env.Data == nil {
		env.Data = []ContentItem{}
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("catalog: encode envelope: %w", err)
	}
	b64 := base64.StdEncoding.EncodeToString(raw)
	return b64[:scrambleIndex] + "x" + b64[scrambleIndex:], nil
}

// Decode reverses Encode: it removes the character at index 2, base64-decodes
// the repaired string and unmarshals the JSON envelope. It is all-or-nothing;
// any failure returns a DecodeError and a zero envelope.
func Decode(encoded string) (Envelope, error) {
	if len(encoded) < scrambleIndex+1 {
		return Envelope{}, &DecodeError{Reason: "input shorter than 3 characters"}
	}
	repaired := encoded[:scrambleIndex] + encoded[scrambleIndex+1:]

	raw, err := base64.StdEncoding.DecodeString(repaired)
	if err != nil {
		return Envelope{}, &DecodeError{Reason: "repaired string is not valid base64", Err: err}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, &DecodeError{Reason: "decoded text is not valid JSON envelope", Err: err}
	}
	if env.TotalPages < 0 {
		return Envelope{}, &DecodeError{Reason: "negative totalPages"}
	}
	if env.Data == nil {
		env.Data = []ContentItem{}
	}
	return env, nil
}
