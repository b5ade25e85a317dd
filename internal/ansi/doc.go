// Package ansi strips terminal escape sequences from backend output so that
// downstream verdict parsing sees plain text regardless of whether the
// backend thought it was talking to a TTY.
//
// [Strip] is idempotent and leaves all non-escape bytes, including multi-byte
// UTF-8 sequences, untouched and in order.
package ansi
