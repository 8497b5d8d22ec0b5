package lerr

import (
	"encoding/json"
	"fmt"
	"io"
)

// Lambda compatible error codes.
const (
	InvalidParameterValue = "InvalidParameterValueException"
	InvalidRequestContent = "InvalidRequestContentException"
	ResourceNotFound      = "ResourceNotFoundException"
	Service               = "ServiceException"
)

// Result is the body of a Lambda compatible error response.
type Result struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
	// Maps directly to HTTP status codes
	Status int `json:"-"`
}

// New returns a Result with the given status, code and message.
func New(status int, code, msg string) Result {
	return Result{Code: code, Message: msg, Status: status}
}

func (e Result) Error() string {
	return fmt.Sprintf("error %s(%s)", e.Code, e.Message)
}

// Encode writes e as JSON.
func (e Result) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(e)
}
