// Package gitctx collects the diff a review call operates on by shelling out
// to git with explicit argument vectors.
package gitctx
