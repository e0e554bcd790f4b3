package cache

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/soccer-stats/internal/domain/season"
	"github.com/riskibarqy/soccer-stats/internal/domain/teamseason"
	"github.com/valyala/bytebufferpool"
)

// keyBuilder joins key parts with ':'. Unset optional parts render as '-'.
type keyBuilder struct {
	buf *bytebufferpool.ByteBuffer
}

func newKey(prefix string) keyBuilder {
	k := keyBuilder{buf: bytebufferpool.Get()}
	k.buf.B = append(k.buf.B, prefix...)
	return k
}

func (k keyBuilder) str(v string) keyBuilder {
	k.sep()
	k.buf.B = append(k.buf.B, strings.ToLower(strings.TrimSpace(v))...)
	return k
}

func (k keyBuilder) num(v int) keyBuilder {
	k.sep()
	k.buf.B = strconv.AppendInt(k.buf.B, int64(v), 10)
	return k
}

func (k keyBuilder) optNum(v *int) keyBuilder {
	if v == nil {
		k.sep()
		k.buf.B = append(k.buf.B, '-')
		return k
	}
	return k.num(*v)
}

func (k keyBuilder) optFloat(v *float64) keyBuilder {
	k.sep()
	if v == nil {
		k.buf.B = append(k.buf.B, '-')
		return k
	}
	k.buf.B = strconv.AppendFloat(k.buf.B, *v, 'g', -1, 64)
	return k
}

func (k keyBuilder) seasons(r season.Range) keyBuilder {
	return k.num(r.Start).num(r.End)
}

func (k keyBuilder) bounds(b teamseason.Bounds) keyBuilder {
	return k.optFloat(b.Low).optFloat(b.High)
}

func (k keyBuilder) sep() {
	k.buf.B = append(k.buf.B, ':')
}

// String returns the key and releases the buffer; k must not be used after.
func (k keyBuilder) String() string {
	out := k.buf.String()
	bytebufferpool.Put(k.buf)
	return out
}
