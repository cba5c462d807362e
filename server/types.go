// SPDX-License-Identifier: MIT
package server

// TreeResponse is the body of a successful POST /v1/trees.
type TreeResponse struct {
	// Tree is the Newick serialization.
	Tree string `json:"tree"`

	// Algorithm echoes the algorithm used.
	Algorithm string `json:"algorithm"`

	// Taxa is the number of leaves.
	Taxa int `json:"taxa"`

	// RequestID correlates the response with server logs.
	RequestID string `json:"request_id"`

	// Cached is true when the tree was served from the result cache.
	Cached bool `json:"cached"`
}

// AlgorithmInfo describes one registered algorithm.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AlgorithmsResponse is the body of GET /v1/algorithms.
type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	// Error is the human-readable message.
	Error string `json:"error"`

	// Code is a stable identifier such as TOO_FEW_SEQUENCES.
	Code string `json:"code,omitempty"`
}

// Codes for failures detected by the server itself rather than by package boundary.
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeBodyTooLarge     = "BODY_TOO_LARGE"
	CodeTooManySequences = "TOO_MANY_SEQUENCES"
	CodeInternal         = "INTERNAL"
)
