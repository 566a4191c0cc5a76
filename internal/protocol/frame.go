package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// byteOrder is the host's byte order. The protocol is only spoken between processes on one machine.
var byteOrder = binary.NativeEndian

var (
	// ErrMalformedFrame means the stream ended, or came up short, in the middle of a frame (or before a sentinel).
	ErrMalformedFrame = errors.New("protocol: malformed frame")

	// ErrInvalidUTF8 means a text payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("protocol: payload is not valid UTF-8")

	// ErrSentinel is returned by ReadRequest when it reads the (0, 0) sentinel frame.
	ErrSentinel = errors.New("protocol: sentinel")
)

// Request is a decoded request frame.
type Request struct {
	OldText string
	NewText string
}

// ReadRequest reads one request frame from r. It returns ErrSentinel if the frame is the sentinel. Any other error wraps ErrMalformedFrame or ErrInvalidUTF8.
func ReadRequest(r io.Reader) (Request, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Request{}, fmt.Errorf("%w: reading header: %w", ErrMalformedFrame, err)
	}
	oldLen := byteOrder.Uint32(header[0:4])
	newLen := byteOrder.Uint32(header[4:8])
	if oldLen == 0 && newLen == 0 {
		return Request{}, ErrSentinel
	}

	oldText, err := readText(r, oldLen, "old text")
	if err != nil {
		return Request{}, err
	}
	newText, err := readText(r, newLen, "new text")
	if err != nil {
		return Request{}, err
	}
	return Request{OldText: oldText, NewText: newText}, nil
}

func readText(r io.Reader, n uint32, what string) (string, error) {
	if n == 0 {
		return "", nil
	}
	// The buffer grows with the bytes that actually arrive, so a garbage length fails as a short read rather than a huge allocation.
	var buf bytes.Buffer
	read, err := io.CopyN(&buf, r, int64(n))
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("%w: reading %s: got %d of %d bytes: %w", ErrMalformedFrame, what, read, n, err)
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", fmt.Errorf("%w (%s)", ErrInvalidUTF8, what)
	}
	return buf.String(), nil
}

// WriteRequest writes one request frame for oldText and newText to w. Writing two empty texts is an error, since that frame would be the sentinel; use
// WriteSentinel to end the loop.
func WriteRequest(w io.Writer, oldText, newText string) error {
	if oldText == "" && newText == "" {
		return errors.New("protocol: a request with two empty texts is indistinguishable from the sentinel")
	}
	oldLen, err := frameLen(oldText)
	if err != nil {
		return err
	}
	newLen, err := frameLen(newText)
	if err != nil {
		return err
	}

	var header [8]byte
	byteOrder.PutUint32(header[0:4], oldLen)
	byteOrder.PutUint32(header[4:8], newLen)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, oldText); err != nil {
		return err
	}
	_, err = io.WriteString(w, newText)
	return err
}

// WriteSentinel writes the (0, 0) frame that ends a Serve loop.
func WriteSentinel(w io.Writer) error {
	var header [8]byte
	_, err := w.Write(header[:])
	return err
}

// WriteResponse writes one response frame carrying result to w.
func WriteResponse(w io.Writer, result string) error {
	n, err := frameLen(result)
	if err != nil {
		return err
	}
	var header [4]byte
	byteOrder.PutUint32(header[:], n)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = io.WriteString(w, result)
	return err
}

// ReadResponse reads one response frame from r. Errors wrap ErrMalformedFrame or ErrInvalidUTF8.
func ReadResponse(r io.Reader) (string, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return "", fmt.Errorf("%w: reading response header: %w", ErrMalformedFrame, err)
	}
	return readText(r, byteOrder.Uint32(header[:]), "result")
}

func frameLen(s string) (uint32, error) {
	if uint64(len(s)) > uint64(^uint32(0)) {
		return 0, fmt.Errorf("protocol: payload of %d bytes does not fit a u32 length", len(s))
	}
	return uint32(len(s)), nil
}
