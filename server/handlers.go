// SPDX-License-Identifier: MIT
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/decenttree/boundary"
	"github.com/katalvlaran/decenttree/ndarray"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	names := s.registry.Names()
	resp := AlgorithmsResponse{Algorithms: make([]AlgorithmInfo, 0, len(names))}
	for _, name := range names {
		desc, _ := s.registry.Description(name)
		resp.Algorithms = append(resp.Algorithms, AlgorithmInfo{Name: name, Description: desc})
	}
	c.JSON(http.StatusOK, resp)
}

// handleTrees decodes a keyword object, validates it and builds the tree.
func (s *Server) handleTrees(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)

	var kw map[string]any
	if err := c.ShouldBindBodyWithJSON(&kw); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(c, http.StatusRequestEntityTooLarge, "unknown", CodeBodyTooLarge, "request body too large")

			return
		}
		s.fail(c, http.StatusBadRequest, "unknown", CodeInvalidJSON, "invalid JSON body: "+err.Error())

		return
	}
	if kw == nil {
		kw = map[string]any{}
	}
	key := s.cache.key(c)
	if resp, ok := s.cache.get(key); ok {
		resp.RequestID = c.GetString(requestIDKey)
		s.metrics.constructions.WithLabelValues(resp.Algorithm, "ok").Inc()
		c.JSON(http.StatusOK, resp)

		return
	}

	algorithm, _ := kw[boundary.KeyAlgorithm].(string)
	label := "unknown"
	if s.registry.Has(algorithm) {
		label = algorithm
	}

	if seqs, ok := kw[boundary.KeySequences].([]any); ok && len(seqs) > s.cfg.MaxTaxa {
		s.fail(c, http.StatusBadRequest, label, CodeTooManySequences,
			"sequences contains more than the allowed maximum of taxa")

		return
	}
	if _, ok := kw[boundary.KeyPrecision]; !ok {
		kw[boundary.KeyPrecision] = s.build.Precision
	}
	if m, ok := toMatrix(kw[boundary.KeyDistances]); ok {
		kw[boundary.KeyDistances] = m
	}

	req, err := boundary.DecodeRequest(kw)
	if err != nil {
		s.failBoundary(c, label, err)

		return
	}

	start := time.Now()
	tree, err := s.bridge.ConstructTree(req)
	s.metrics.duration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		s.failBoundary(c, label, err)

		return
	}

	s.metrics.constructions.WithLabelValues(label, "ok").Inc()
	taxa, _ := boundary.Strings(boundary.KeySequences, req.Sequences)
	resp := TreeResponse{
		Tree:      tree,
		Algorithm: req.Algorithm,
		Taxa:      len(taxa),
	}
	s.cache.add(key, resp)
	resp.RequestID = c.GetString(requestIDKey)
	c.JSON(http.StatusOK, resp)
}

// failBoundary maps a boundary error to its status code.
func (s *Server) failBoundary(c *gin.Context, label string, err error) {
	e, ok := boundary.AsError(err)
	if !ok {
		s.log.Error("unexpected construction error", "err", err, "request_id", c.GetString(requestIDKey))
		s.fail(c, http.StatusInternalServerError, label, CodeInternal, "internal error")

		return
	}
	status := http.StatusBadRequest
	if errors.Is(e, boundary.ErrConstructionFailed) {
		status = http.StatusUnprocessableEntity
	}
	s.fail(c, status, label, e.Code(), e.Error())
}

func (s *Server) fail(c *gin.Context, status int, label, code, msg string) {
	s.metrics.constructions.WithLabelValues(label, strings.ToLower(code)).Inc()
	c.JSON(status, ErrorResponse{Error: msg, Code: code})
}

// toMatrix converts a JSON array of equally long numeric rows into a 2-D
// Float64 array. Any other shape is reported as not convertible.
func toMatrix(v any) (*ndarray.Dense, bool) {
	rows, ok := v.([]any)
	if !ok || len(rows) == 0 {
		return nil, false
	}
	first, ok := rows[0].([]any)
	if !ok {
		return nil, false
	}
	cols := len(first)
	data := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		row, ok := r.([]any)
		if !ok || len(row) != cols {
			return nil, false
		}
		for _, x := range row {
			f, ok := x.(float64)
			if !ok {
				return nil, false
			}
			data = append(data, f)
		}
	}
	m, err := ndarray.NewFloat64(data, len(rows), cols)
	if err != nil {
		return nil, false
	}

	return m, true
}
