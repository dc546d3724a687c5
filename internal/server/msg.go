package server

import (
	"encoding/json"

	"em_casing/internal/casing"
	"em_casing/internal/config"
	"em_casing/internal/wire"
)

// Message types.
const (
	TypeSolve  = "solve"
	TypeSolved = "solved"
	TypeError  = "error"
)

// Msg is one websocket frame in either direction. Replies carry the id the
// server assigned to the request.
type Msg struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SolveRequest is the content of a solve message. Casing fields that are
// absent keep their defaults.
type SolveRequest struct {
	Casing  config.Casing `json:"casing"`
	Wire    []wire.Node   `json:"wire"`
	Current float64       `json:"current"`
	Method  string        `json:"method"`
}

// SolveReply is the content of a solved message, e^(+iwt).
type SolveReply struct {
	Depths        []float64 `json:"depths"`
	DensityRe     []float64 `json:"j_re"`
	DensityIm     []float64 `json:"j_im"`
	SegmentLength float64   `json:"segment_length"`
	Area          float64   `json:"area"`
}

func newSolveReply(sol *casing.Solution) SolveReply {
	r := SolveReply{
		Depths:        sol.Depths,
		DensityRe:     make([]float64, len(sol.Density)),
		DensityIm:     make([]float64, len(sol.Density)),
		SegmentLength: sol.SegmentLength,
		Area:          sol.Area,
	}
	for k, j := range sol.Density {
		r.DensityRe[k] = real(j)
		r.DensityIm[k] = imag(j)
	}
	return r
}
