package protocol

import (
	"bufio"
	"io"
)

// Client drives a filter process from the host side: it writes request frames to the process's input and reads response frames from its output.
//
// A Client is not safe for concurrent use; the protocol is strictly one request, then one response.
type Client struct {
	r *bufio.Reader
	w *bufio.Writer
}

// NewClient returns a Client that writes requests to w and reads responses from r.
func NewClient(r io.Reader, w io.Writer) *Client {
	return &Client{r: bufio.NewReader(r), w: bufio.NewWriter(w)}
}

// Diff sends oldText and newText and returns the text the filter reports as added.
//
// Two empty texts can't be sent (that frame is the sentinel); nothing was added between them, so Diff returns "" without a round trip.
func (c *Client) Diff(oldText, newText string) (string, error) {
	if oldText == "" && newText == "" {
		return "", nil
	}
	if err := WriteRequest(c.w, oldText, newText); err != nil {
		return "", err
	}
	if err := c.w.Flush(); err != nil {
		return "", err
	}
	return ReadResponse(c.r)
}

// Close sends the sentinel frame, which makes the filter stop. It does not close the underlying reader or writer.
func (c *Client) Close() error {
	if err := WriteSentinel(c.w); err != nil {
		return err
	}
	return c.w.Flush()
}
