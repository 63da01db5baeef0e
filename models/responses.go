package models

// Envelope is the uniform JSON body returned by every endpoint.
//
// Code mirrors the outcome (200 for success and business failures, 401
// from the auth gate, 500 for faults). Required lists missing request
// fields on validation failures and is omitted otherwise.
type Envelope struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Data     any      `json:"data"`
	Success  bool     `json:"success"`
	Required []string `json:"required,omitempty"`
}
