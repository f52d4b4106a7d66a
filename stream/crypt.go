/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package stream

import (
	libprv "github.com/nabbar/secstream/provider"
)

// encrypt seals one plaintext chunk as a record laid out in place in the
// outbound buffer. The buffer is not grown between the layout and the
// provider call.
func (o *stm) encrypt(p []byte) error {
	var (
		sz = o.st.sizes
		h  = int(sz.Header)
		t  = int(sz.Trailer)
	)

	if len(p) > int(sz.MaxMessage) {
		panic("stream: encrypt chunk exceeds maximum message size")
	}

	region := o.buf.Out().Layout(h, p, t)

	bufs := []libprv.Buffer{
		{Tag: libprv.TagStreamHeader, Data: region[:h]},
		{Tag: libprv.TagData, Data: region[h : h+len(p)]},
		{Tag: libprv.TagStreamTrailer, Data: region[h+len(p):]},
		{Tag: libprv.TagEmpty},
	}

	if sts := o.ses.Encrypt(bufs); !sts.IsOK() {
		return ErrorEncrypt.Error(sts.Err())
	}

	// the provider may have produced a shorter trailer than reserved
	o.buf.Out().Seal(len(bufs[0].Data) + len(bufs[1].Data) + len(bufs[2].Data))

	return nil
}

// decrypt opens the leading record held in the encrypted inbound buffer and
// dispatches on the provider status. Renegotiation and expiry are state
// transitions, not errors; the consume arithmetic still runs so trailing
// bytes survive into the next handshake.
func (o *stm) decrypt() error {
	bufs := []libprv.Buffer{
		{Tag: libprv.TagData, Data: o.buf.In().Bytes()},
		{Tag: libprv.TagEmpty},
		{Tag: libprv.TagEmpty},
		{Tag: libprv.TagEmpty},
	}

	sts := o.ses.Decrypt(bufs)

	switch sts.Class() {
	case libprv.ClassOK:
		data, extra := splitDecrypt(bufs)

		o.buf.Plain().Load(data)
		o.buf.In().Consume(o.buf.In().Len() - len(extra))
		o.needsRead = o.buf.In().Empty()

		return nil

	case libprv.ClassIncompleteMessage:
		o.needsRead = true

		return nil

	case libprv.ClassContextExpired, libprv.ClassRenegotiate:
		o.st = state{
			stg:          stageInitializing,
			moreCalls:    true,
			shuttingDown: sts.Class() == libprv.ClassContextExpired,
		}

		_, extra := splitDecrypt(bufs)

		o.buf.In().Consume(o.buf.In().Len() - len(extra))
		o.needsRead = o.buf.In().Empty()

		if o.st.shuttingDown {
			o.logDebug("peer closed the session")
		} else {
			o.logDebug("peer requested renegotiation")
		}

		return nil

	default:
		return ErrorDecrypt.Error(sts.Err())
	}
}

// splitDecrypt walks the rewritten descriptor tags for the plaintext
// sub-range and the trailing bytes of the next record. Slot 0 holds the
// input window or, once a record is opened, its header, and is skipped.
func splitDecrypt(bufs []libprv.Buffer) (data []byte, extra []byte) {
	for _, b := range bufs[1:] {
		switch b.Tag {
		case libprv.TagData:
			if data == nil {
				data = b.Data
			}
		case libprv.TagExtra:
			if extra == nil {
				extra = b.Data
			}
		}
	}

	return data, extra
}
