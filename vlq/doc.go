// Package vlq defines the failures reported by the base64 VLQ decoder used for
// the "mappings" field of a source map.
//
// The decoder reports exactly one of three conditions: the input ended in the
// middle of a value, a byte was outside the base64 alphabet, or the decoded
// value does not fit in 32 bits. Callers convert these with errors.FromVLQ.
package vlq
