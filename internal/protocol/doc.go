// Package protocol implements the length-prefixed binary protocol spoken by the nvdadmp filter process over its standard input and output.
//
// Request frame:
//
//	oldLen  u32
//	newLen  u32
//	oldText oldLen bytes, UTF-8
//	newText newLen bytes, UTF-8
//
// Response frame:
//
//	resultLen u32
//	result    resultLen bytes, UTF-8
//
// A request with oldLen == newLen == 0 and no payload is the sentinel: it ends the loop and gets no response. All integers use the host's native byte order
// (little-endian on every realistic target); both ends are expected to run on the same machine.
//
// Serve runs the server side of the loop. Client is the host side, for Go programs (and tests) that drive a filter process.
//
// Framing errors are fatal: once a frame is short or not UTF-8, there is no way to find the next frame boundary, so Serve returns the error and the caller is
// expected to exit.
package protocol
