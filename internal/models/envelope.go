package models

import "encoding/json"

// Envelope is the fixed response wrapper used by every Etherscan-family
// endpoint. Status is "1" on success and "0" otherwise; Result carries the
// payload and is kept raw so each operation can decode its own shape.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Result  json.RawMessage `json:"result"`
}

// OK reports whether the upstream call succeeded.
func (e *Envelope) OK() bool {
	return e.Status == "1"
}
