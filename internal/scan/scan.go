// Package scan abstracts barcode capture devices.
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled is returned when the user stops scanning without a code.
var ErrCancelled = errors.New("scan cancelled")

// Decoder yields one decoded barcode per call.
type Decoder interface {
	Decode(ctx context.Context) (string, error)
}

// LineDecoder reads barcodes one per line, as keyboard-wedge scanners and
// piped input produce them. Lines are returned trimmed but otherwise as read,
// so short UPC-E and alphanumeric codes reach the lookup unchanged. Blank
// lines are skipped; "q" or end of input cancels.
type LineDecoder struct {
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
}

func NewLineDecoder(r io.Reader) *LineDecoder {
	d := &LineDecoder{lines: make(chan lineResult)}
	go func() {
		defer close(d.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			d.lines <- lineResult{text: sc.Text()}
		}
		if err := sc.Err(); err != nil {
			d.lines <- lineResult{err: err}
		}
	}()
	return d
}

func (d *LineDecoder) Decode(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		case res, ok := <-d.lines:
			if !ok {
				return "", ErrCancelled
			}
			if res.err != nil {
				return "", fmt.Errorf("read barcode: %w", res.err)
			}
			code := strings.TrimSpace(res.text)
			switch {
			case code == "":
				continue
			case strings.EqualFold(code, "q"):
				return "", ErrCancelled
			}
			return code, nil
		}
	}
}
