package frame

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/danmuck/tlvkit/internal/protocol/tlv"
)

const (
	Magic          uint32 = 0x544C564B // "TLVK"
	Version        uint16 = 1
	FixedHeaderLen uint16 = 20
)

var (
	ErrShortHeader        = errors.New("frame: short fixed header")
	ErrInvalidMagic       = errors.New("frame: invalid magic")
	ErrUnsupportedVersion = errors.New("frame: unsupported version")
	ErrHeaderLenMismatch  = errors.New("frame: header_len does not match fixed header")
	ErrPayloadTooLarge    = errors.New("frame: payload too large")
	ErrTruncated          = errors.New("frame: truncated payload")
	ErrInvalidConfig      = errors.New("frame: invalid codec config")
)

// Header is the fixed container header. The codec fields carry the tree
// Config so a reader can decode the payload without out-of-band agreement.
type Header struct {
	Magic      uint32
	Version    uint16
	HeaderLen  uint16
	AttrLen    uint8
	TagLen     uint8
	LenLen     uint8
	Order      uint8
	PayloadLen uint64
}

// Config returns the tree config described by h.
func (h Header) Config() tlv.Config {
	return tlv.Config{
		AttrLen: int(h.AttrLen),
		TagLen:  int(h.TagLen),
		LenLen:  int(h.LenLen),
		Order:   tlv.ByteOrder(h.Order),
	}
}

// HeaderFor builds a header describing cfg.
func HeaderFor(cfg tlv.Config) (Header, error) {
	if err := cfg.Validate(); err != nil {
		return Header{}, errors.Mark(err, ErrInvalidConfig)
	}
	if cfg.AttrLen > 0xff || cfg.TagLen > 0xff {
		return Header{}, errors.Wrapf(ErrInvalidConfig, "widths attr=%d tag=%d exceed one byte", cfg.AttrLen, cfg.TagLen)
	}
	return Header{
		AttrLen: uint8(cfg.AttrLen),
		TagLen:  uint8(cfg.TagLen),
		LenLen:  uint8(cfg.LenLen),
		Order:   uint8(cfg.Order),
	}, nil
}

// Frame is one header plus an encoded document.
type Frame struct {
	Header  Header
	Payload []byte
}

// Limits constrains frame decode/encode memory use.
type Limits struct {
	MaxPayloadBytes uint64
}

func DefaultLimits() Limits {
	return Limits{
		MaxPayloadBytes: 8 * 1024 * 1024,
	}
}

func ReadFrame(r io.Reader, limits Limits) (Frame, error) {
	var fixed [FixedHeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return Frame{}, ErrShortHeader
		}
		return Frame{}, err
	}

	h, err := DecodeHeader(fixed[:])
	if err != nil {
		return Frame{}, err
	}
	if h.Magic != Magic {
		return Frame{}, ErrInvalidMagic
	}
	if h.Version != Version {
		return Frame{}, ErrUnsupportedVersion
	}
	if h.HeaderLen != FixedHeaderLen {
		return Frame{}, ErrHeaderLenMismatch
	}
	if h.PayloadLen > limits.MaxPayloadBytes {
		return Frame{}, ErrPayloadTooLarge
	}

	payload := make([]byte, h.PayloadLen)
	if h.PayloadLen > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return Frame{}, errors.Wrapf(ErrTruncated, "want %d bytes: %v", h.PayloadLen, err)
		}
	}
	return Frame{Header: h, Payload: payload}, nil
}

func WriteFrame(w io.Writer, f Frame, limits Limits) error {
	payloadLen := uint64(len(f.Payload))
	if payloadLen > limits.MaxPayloadBytes {
		return ErrPayloadTooLarge
	}

	h := f.Header
	h.Magic = Magic
	h.Version = Version
	h.HeaderLen = FixedHeaderLen
	h.PayloadLen = payloadLen

	if _, err := w.Write(EncodeHeader(h)); err != nil {
		return err
	}
	if payloadLen > 0 {
		if _, err := w.Write(f.Payload); err != nil {
			return err
		}
	}
	return nil
}

func EncodeHeader(h Header) []byte {
	buf := make([]byte, FixedHeaderLen)
	binary.BigEndian.PutUint32(buf[0:4], h.Magic)
	binary.BigEndian.PutUint16(buf[4:6], h.Version)
	binary.BigEndian.PutUint16(buf[6:8], h.HeaderLen)
	buf[8] = h.AttrLen
	buf[9] = h.TagLen
	buf[10] = h.LenLen
	buf[11] = h.Order
	binary.BigEndian.PutUint64(buf[12:20], h.PayloadLen)
	return buf
}

func DecodeHeader(b []byte) (Header, error) {
	if len(b) != int(FixedHeaderLen) {
		return Header{}, errors.Newf("frame: invalid fixed header length: %d", len(b))
	}
	return Header{
		Magic:      binary.BigEndian.Uint32(b[0:4]),
		Version:    binary.BigEndian.Uint16(b[4:6]),
		HeaderLen:  binary.BigEndian.Uint16(b[6:8]),
		AttrLen:    b[8],
		TagLen:     b[9],
		LenLen:     b[10],
		Order:      b[11],
		PayloadLen: binary.BigEndian.Uint64(b[12:20]),
	}, nil
}

// WriteTree lays out t and writes it as one frame.
func WriteTree(w io.Writer, t *tlv.Tree, limits Limits) error {
	h, err := HeaderFor(t.Config())
	if err != nil {
		return err
	}
	payload, err := t.Marshal()
	if err != nil {
		return err
	}
	logging.Debugf("frame.WriteTree payload=%d nodes=%d", len(payload), t.NodeCount())
	return WriteFrame(w, Frame{Header: h, Payload: payload}, limits)
}

// ReadTree reads one frame and decodes its payload with the config carried in
// the header. The payload must hold exactly one document.
func ReadTree(r io.Reader, limits Limits) (*tlv.Tree, error) {
	f, err := ReadFrame(r, limits)
	if err != nil {
		return nil, err
	}
	cfg := f.Header.Config()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Mark(err, ErrInvalidConfig)
	}
	t, n, err := tlv.Decode(cfg, f.Payload)
	if err != nil {
		return nil, err
	}
	if n != len(f.Payload) {
		return nil, errors.Wrapf(tlv.ErrMalformed, "frame payload has %d bytes after the document", len(f.Payload)-n)
	}
	logging.Debugf("frame.ReadTree payload=%d nodes=%d", n, t.NodeCount())
	return t, nil
}
