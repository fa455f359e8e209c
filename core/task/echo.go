package task

import (
	"encoding/json"
	"errors"
)

var (
	ErrEchoNotObject   = errors.New("request body must be a JSON object")
	ErrEchoMissingTask = errors.New("missing required field 'task'")
	ErrEchoTaskType    = errors.New("field 'task' must be a string")
)

// EchoRequest is the body accepted by the task echo endpoint.
type EchoRequest struct {
	Task string `json:"task"`
}

type EchoResponse struct {
	Received string `json:"received"`
}

// Echo decodes body and returns the task string untouched, whitespace and
// all. The body must be a JSON object with a string "task" member.
func Echo(body []byte) (EchoResponse, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return EchoResponse{}, ErrEchoNotObject
		}
		return EchoResponse{}, err
	}
	if obj == nil {
		return EchoResponse{}, ErrEchoNotObject
	}

	raw, ok := obj["task"]
	if !ok {
		return EchoResponse{}, ErrEchoMissingTask
	}

	var received string
	if err := json.Unmarshal(raw, &received); err != nil || string(raw) == "null" {
		return EchoResponse{}, ErrEchoTaskType
	}
	return EchoResponse{Received: received}, nil
}
