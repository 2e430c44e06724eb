// Package codec encodes storage records in the protobuf wire format.
package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"maps"
	"math"
	"slices"

	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/protobuf/encoding/protowire"
)

// MaxMessageSize bounds a single delimited message read from a stream.
const MaxMessageSize = 64 << 20

// skip tells fields to discard the current value.
const skip = math.MinInt

// fieldFunc decodes one field value. It returns how many bytes of b it consumed,
// a negative protowire error code, or skip.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// fields calls fn for every field of a message.
func fields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return decodeError(protowire.ParseError(n))
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n == skip {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return decodeError(protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func decodeError(err error) error {
	return zerr.Wrap(err, domain.ErrDecodeFailed.Error())
}

func consumeString(typ protowire.Type, b []byte, dst *string) int {
	if typ != protowire.BytesType {
		return skip
	}
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*dst = v
	}
	return n
}

func consumeInt(typ protowire.Type, b []byte, dst *int) int {
	var v int64
	n := consumeInt64(typ, b, &v)
	if n >= 0 {
		*dst = int(v)
	}
	return n
}

func consumeInt64(typ protowire.Type, b []byte, dst *int64) int {
	if typ != protowire.VarintType {
		return skip
	}
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = int64(v) //nolint:gosec // two's complement round trip
	}
	return n
}

func consumeBool(typ protowire.Type, b []byte, dst *bool) int {
	if typ != protowire.VarintType {
		return skip
	}
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = protowire.DecodeBool(v)
	}
	return n
}

// consumeMessage hands the embedded message bytes to decode.
func consumeMessage(typ protowire.Type, b []byte, decode func([]byte) error) (int, error) {
	if typ != protowire.BytesType {
		return skip, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, nil
	}
	return n, decode(v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v)) //nolint:gosec // two's complement round trip
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// appendStringMap writes one entry message per key, in key order.
func appendStringMap(b []byte, num protowire.Number, m map[string]string) []byte {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		var entry []byte
		entry = appendString(entry, 1, k)
		entry = appendString(entry, 2, m[k])
		b = appendMessage(b, num, entry)
	}
	return b
}

func decodeEntry(b []byte, m map[string]string) error {
	var k, v string
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &k), nil
		case 2:
			return consumeString(typ, b, &v), nil
		default:
			return skip, nil
		}
	})
	if err != nil {
		return err
	}
	m[k] = v
	return nil
}

// AppendDelimited appends msg prefixed with its varint length.
func AppendDelimited(b, msg []byte) []byte {
	b = protowire.AppendVarint(b, uint64(len(msg)))
	return append(b, msg...)
}

// ReadDelimited reads one length prefixed message.
// It returns io.EOF when the stream ends cleanly between messages.
func ReadDelimited(r *bufio.Reader) ([]byte, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, decodeError(err)
	}
	if size > MaxMessageSize {
		return nil, zerr.With(decodeError(errors.New("message too large")), "size", size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, decodeError(err)
	}
	return buf, nil
}
