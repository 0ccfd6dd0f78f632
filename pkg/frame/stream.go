package frame

import "io"

// StreamReader reads whole LLRP frames off a TCP byte stream. Unlike
// Matter's transport, LLRP has no separate length prefix: the
// envelope's own Length field is the frame delimiter, so StreamReader
// reads the 10-byte header first and then exactly Length-HeaderSize
// more bytes (grounded on pkg/message/frame.go's StreamReader, adapted
// to a self-delimiting header instead of an extra 4-byte prefix).
type StreamReader struct {
	r io.Reader
}

// NewStreamReader wraps r for frame-at-a-time reads.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

// ReadFrame reads one full frame (header + body) and returns its raw
// bytes, ready for Decode.
func (sr *StreamReader) ReadFrame() ([]byte, error) {
	hdrBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(sr.r, hdrBuf); err != nil {
		return nil, err
	}

	hdr, _, err := Decode(hdrBuf)
	if err != nil {
		if _, ok := IsNeedMoreData(err); !ok {
			return nil, err
		}
	}
	if hdr.Length < HeaderSize {
		return nil, ErrShortFrame
	}

	full := make([]byte, hdr.Length)
	copy(full, hdrBuf)
	if _, err := io.ReadFull(sr.r, full[HeaderSize:]); err != nil {
		return nil, err
	}

	return full, nil
}

// StreamWriter writes whole LLRP frames to a TCP byte stream. Frames
// are already self-delimited, so this is a thin wrapper that exists to
// mirror the teacher's StreamWriter symmetry.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter wraps w for frame-at-a-time writes.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteFrame writes a complete encoded frame.
func (sw *StreamWriter) WriteFrame(frame []byte) error {
	_, err := sw.w.Write(frame)
	return err
}
