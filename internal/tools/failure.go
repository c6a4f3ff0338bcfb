package tools

import (
	"fmt"

	"github.com/kelsos/etherscan-tools/internal/client"
)

// FailureDetail is the structured shape every error takes at the tool
// boundary. Classified client errors keep their kind, URL and upstream
// details; anything else degrades to a generic message.
type FailureDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
	Details string `json:"details,omitempty"`
}

// Failure is the non-throwing response returned instead of a result.
type Failure struct {
	Error FailureDetail `json:"error"`
}

const genericFailureKind = "error"

// NewFailure converts any error into a structured failure response.
func NewFailure(err error) *Failure {
	if ce, ok := client.AsError(err); ok {
		return &Failure{Error: FailureDetail{
			Kind:    string(ce.Kind),
			Message: ce.Error(),
			URL:     ce.URL,
			Details: ce.Details,
		}}
	}
	return &Failure{Error: FailureDetail{
		Kind:    genericFailureKind,
		Message: err.Error(),
	}}
}

// FailureFromRecovered wraps a recovered panic value. Non-error values get
// the last-resort unknown-error wrapper.
func FailureFromRecovered(v interface{}) *Failure {
	if err, ok := v.(error); ok {
		return NewFailure(err)
	}
	return &Failure{Error: FailureDetail{
		Kind:    genericFailureKind,
		Message: fmt.Sprintf("Unknown error: %v", v),
	}}
}
