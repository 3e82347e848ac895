package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Envelope is the uniform shape of every backend answer.
type Envelope[T any] struct {
	Success bool       `json:"success"`
	Data    *T         `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// rawEnvelope tells an enveloped body apart from a bare payload.
type rawEnvelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorBody      `json:"error"`
	Message string          `json:"message"`
}

// decodeEnvelope parses a 2xx body. Bodies without a "success" field are
// treated as a bare payload and wrapped into a successful envelope. An
// empty body yields a successful envelope without data.
func decodeEnvelope[T any](body []byte) (*Envelope[T], error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return &Envelope[T]{Success: true}, nil
	}

	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		// Arrays and scalars cannot be envelopes.
		return decodeBare[T](body)
	}
	if raw.Success == nil {
		return decodeBare[T](body)
	}

	env := &Envelope[T]{Success: *raw.Success, Error: raw.Error, Message: raw.Message}
	if len(raw.Data) > 0 && !bytes.Equal(raw.Data, []byte("null")) {
		var data T
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
		env.Data = &data
	}
	return env, nil
}

func decodeBare[T any](body []byte) (*Envelope[T], error) {
	var data T
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &Envelope[T]{Success: true, Data: &data}, nil
}

// decodeErrorBody extracts the "error" object of a failed response, if any.
func decodeErrorBody(body []byte) *ErrorBody {
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	return raw.Error
}
