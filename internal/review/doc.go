// Package review builds the review prompt sent to a backend and parses the
// verdict out of the normalized response.
//
// The prompt contract asks the reviewer to end its answer with a single line
// of the form "STATUS: PASSED" or "STATUS: FAILED"; [ParseVerdict] reads that
// line back. Input to ParseVerdict must already be normalized (see the ansi
// package), which the providers router guarantees.
package review
