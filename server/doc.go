// SPDX-License-Identifier: MIT

// Package server exposes tree construction over HTTP.
//
// Routes:
//
//	POST /v1/trees       build a tree from a JSON keyword object
//	GET  /v1/algorithms  list registered algorithms
//	GET  /healthz        liveness
//	GET  /metrics        Prometheus metrics
//
// The request body uses the keyword names of boundary.ConstructTreeKeywords.
// A rectangular array of numeric rows for "distances" is converted to a 2-D
// typed array and takes the borrowed path; anything else is handed to the
// sequence path unchanged. Validation failures answer 400 with
// {"error", "code"}; a failed construction answers 422.
package server
