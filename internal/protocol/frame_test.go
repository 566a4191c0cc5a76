package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(oldLen, newLen uint32) []byte {
	var b [8]byte
	byteOrder.PutUint32(b[0:4], oldLen)
	byteOrder.PutUint32(b[4:8], newLen)
	return b[:]
}

func TestRequestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRequest(&buf, "old 🌵\n", "new"))
	require.NoError(t, WriteRequest(&buf, "", "only new"))
	require.NoError(t, WriteSentinel(&buf))

	req, err := ReadRequest(&buf)
	require.NoError(t, err)
	assert.Equal(t, Request{OldText: "old 🌵\n", NewText: "new"}, req)

	req, err = ReadRequest(&buf)
	require.NoError(t, err)
	assert.Equal(t, Request{OldText: "", NewText: "only new"}, req)

	_, err = ReadRequest(&buf)
	assert.ErrorIs(t, err, ErrSentinel)
	assert.Equal(t, 0, buf.Len())
}

func TestWriteRequest_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRequest(&buf, "ab", "xyz"))

	exp := append(header(2, 3), "abxyz"...)
	assert.Equal(t, exp, buf.Bytes())
}

func TestWriteRequest_RejectsSentinelLookalike(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteRequest(&buf, "", ""))
	assert.Equal(t, 0, buf.Len())
}

func TestResponseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResponse(&buf, "r\n"))
	require.NoError(t, WriteResponse(&buf, ""))

	var exp []byte
	exp = append(exp, 2, 0, 0, 0)
	if byteOrder.Uint16([]byte{1, 0}) != 1 {
		exp = []byte{0, 0, 0, 2}
	}
	assert.Equal(t, append(exp, "r\n"...), buf.Bytes()[:6])

	got, err := ReadResponse(&buf)
	require.NoError(t, err)
	assert.Equal(t, "r\n", got)

	got, err = ReadResponse(&buf)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestReadRequest_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty stream", nil, ErrMalformedFrame},
		{"short header", []byte{1, 0, 0}, ErrMalformedFrame},
		{"short old text", append(header(5, 0), "abc"...), ErrMalformedFrame},
		{"short new text", append(header(1, 5), "abc"...), ErrMalformedFrame},
		{"invalid utf-8 old", append(header(1, 1), 0xff, 'a'), ErrInvalidUTF8},
		{"invalid utf-8 new", append(header(1, 2), 'a', 0xc3, 0x28), ErrInvalidUTF8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadRequest(bytes.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, errors.Is(err, ErrSentinel))
		})
	}
}

func TestReadRequest_EOFIsWrapped(t *testing.T) {
	_, err := ReadRequest(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)

	_, err = ReadRequest(bytes.NewReader(append(header(4, 0), "ab"...)))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadResponse_Malformed(t *testing.T) {
	_, err := ReadResponse(bytes.NewReader([]byte{9}))
	assert.ErrorIs(t, err, ErrMalformedFrame)

	var buf bytes.Buffer
	require.NoError(t, WriteResponse(&buf, "hello"))
	_, err = ReadResponse(bytes.NewReader(buf.Bytes()[:6]))
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestReadRequest_HugeDeclaredLength(t *testing.T) {
	// A header claiming ~4 GiB followed by a few bytes fails as a short read.
	input := append(header(^uint32(0), 0), "abc"...)

	_, err := ReadRequest(bytes.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFrame)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "got 3 of 4294967295 bytes")
}
