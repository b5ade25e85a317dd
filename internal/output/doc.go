// Package output renders review reports in the supported formats (text,
// json) to stdout or a file.
package output
