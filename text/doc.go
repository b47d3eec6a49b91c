// Package text decodes byte slices from source map buffers into Go strings,
// rejecting invalid UTF-8 instead of silently replacing it.
package text
