package treewidth

import "errors"

// ErrGraphNil is returned when the input graph to ComputeUpperBound is nil.
var ErrGraphNil = errors.New("treewidth: graph is nil")

// ErrHeuristicNil is returned when no edge-weight heuristic is supplied.
var ErrHeuristicNil = errors.New("treewidth: heuristic is nil")
