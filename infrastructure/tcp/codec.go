// Package tcp is the concrete transport: a TCP connection carrying
// length-prefixed frames.
//
// Frame layout: 1 byte message type, 4 bytes big-endian payload length, payload.
package tcp

import (
	"bufio"
	"chat-client/domain"
	"chat-client/errors"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	HeaderSize          = 5
	DefaultMaxFrameSize = 16 << 20
)

// EncodeFrame returns header and payload in a single buffer so a frame is written with one call.
func EncodeFrame(msgType domain.MessageType, payload []byte) ([]byte, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", errors.ErrFrameTooLarge, len(payload))
	}
	frame := make([]byte, HeaderSize+len(payload))
	frame[0] = msgType.WireByte()
	binary.BigEndian.PutUint32(frame[1:HeaderSize], uint32(len(payload)))
	copy(frame[HeaderSize:], payload)
	return frame, nil
}

// FrameReader decodes frames from a stream. It is not safe for concurrent use.
type FrameReader struct {
	r       *bufio.Reader
	maxSize uint32
	header  [HeaderSize]byte
}

func NewFrameReader(r io.Reader, maxSize int) *FrameReader {
	if maxSize <= 0 || uint64(maxSize) > math.MaxUint32 {
		maxSize = DefaultMaxFrameSize
	}
	return &FrameReader{r: bufio.NewReader(r), maxSize: uint32(maxSize)}
}

// ReadFrame returns the next envelope. It returns io.EOF only when the stream
// ends on a frame boundary; a frame cut short is io.ErrUnexpectedEOF.
// Every envelope owns a fresh payload buffer.
func (fr *FrameReader) ReadFrame() (domain.Envelope, error) {
	if _, err := io.ReadFull(fr.r, fr.header[:]); err != nil {
		return domain.Envelope{}, err
	}
	size := binary.BigEndian.Uint32(fr.header[1:])
	if size > fr.maxSize {
		return domain.Envelope{}, fmt.Errorf("%w: %d bytes, limit %d", errors.ErrFrameTooLarge, size, fr.maxSize)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return domain.Envelope{}, err
	}
	return domain.Envelope{Type: domain.FromWireByte(fr.header[0]), Payload: payload}, nil
}
