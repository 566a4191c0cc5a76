package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/codalotl/nvdadmp/internal/simplelogger"
)

// Handler computes the response text for one request.
type Handler func(oldText, newText string) string

// Serve reads request frames from r, answers each with h, and writes response frames to w, flushing after every response. It returns nil when it reads the
// sentinel frame; no response is written for it.
//
// Any framing error (a short read, an early end of stream, invalid UTF-8) is returned and the loop stops: the stream can't be resynchronized. The content of a
// well-formed request never stops the loop. ctx is checked between frames; a blocked read is not interrupted.
func Serve(ctx context.Context, r io.Reader, w io.Writer, h Handler) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := ReadRequest(br)
		if errors.Is(err, ErrSentinel) {
			simplelogger.Debug("protocol: sentinel after %d request(s)", n-1)
			return nil
		}
		if err != nil {
			return fmt.Errorf("request %d: %w", n, err)
		}

		result := h(req.OldText, req.NewText)
		simplelogger.Debug("protocol: request %d: old=%d new=%d result=%d bytes", n, len(req.OldText), len(req.NewText), len(result))

		if err := WriteResponse(bw, result); err != nil {
			return fmt.Errorf("request %d: writing response: %w", n, err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("request %d: flushing response: %w", n, err)
		}
	}
}
