// Package cli implements the facet command tree and process exit codes.
package cli
