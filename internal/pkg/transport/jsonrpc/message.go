package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error object.
var ErrProviderReturnedError = errors.New("provider error")

// ProviderError is the error object of a JSON-RPC 2.0 response.
// It matches ErrProviderReturnedError with errors.Is.
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("%s: [%d] - %s (%s)", ErrProviderReturnedError, e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// Request is a JSON-RPC 2.0 request. Params is either a positional slice or a named object.
type Request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// NewRequest builds a JSON-RPC 2.0 request.
func NewRequest(id, method string, params any) Request {
	return Request{
		JsonRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// Response is a JSON-RPC 2.0 response or server notification.
type Response struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Error   *ProviderError  `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the response's error object, or nil.
func (r Response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}
