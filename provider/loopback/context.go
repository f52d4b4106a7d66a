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

package loopback

import (
	"bytes"
	"strings"

	libprv "github.com/nabbar/secstream/provider"
)

// handshake token exchange, client side
const (
	tokHello   = "HELLO:"
	tokWelcome = "WELCOME:"
	tokFinish  = "FINISH"
	tokTrusted = "TRUSTED"
)

type phase uint8

const (
	phaseWelcome phase = iota
	phaseTrusted
	phaseOpen
	phaseClosing
	phaseDone
)

type ctx struct {
	name   string
	phase  phase
	closed bool
}

func (o *ctx) Step(in []libprv.Buffer, out []libprv.Buffer) libprv.Status {
	if o.closed || o.phase == phaseDone {
		return sts(libprv.ClassFailure, CodeInvalidHandle)
	}

	if len(in) < 2 || len(out) < 2 {
		return sts(libprv.ClassFailure, CodeInvalidToken)
	}

	// the close notification needs no peer input
	if o.phase == phaseClosing {
		out[0].Data = record(rtClose, nil)
		o.phase = phaseDone

		return stsOK()
	}

	if in[0].Tag != libprv.TagToken {
		return sts(libprv.ClassFailure, CodeInvalidToken)
	}

	rt, body, total, ok := parseRecord(in[0].Data)

	if !ok {
		return sts(libprv.ClassIncompleteMessage, CodeIncompleteMessage)
	}

	if rest := in[0].Data[total:]; len(rest) > 0 {
		in[1] = libprv.Buffer{
			Tag:  libprv.TagExtra,
			Data: rest,
		}
	}

	switch o.phase {
	case phaseWelcome:
		if rt != rtToken || !bytes.HasPrefix(body, []byte(tokWelcome)) {
			return sts(libprv.ClassFailure, CodeInvalidToken)
		}

		srv := string(body[len(tokWelcome):])

		if o.name != "" && !strings.EqualFold(srv, o.name) {
			out[1].Data = record(rtAlert, []byte("bad principal"))
			return sts(libprv.ClassFailure, CodeWrongPrincipal)
		}

		out[0].Data = record(rtToken, []byte(tokFinish))
		o.phase = phaseTrusted

		return sts(libprv.ClassContinueNeeded, CodeContinueNeeded)

	case phaseTrusted:
		if rt != rtToken || string(body) != tokTrusted {
			return sts(libprv.ClassFailure, CodeInvalidToken)
		}

		o.phase = phaseOpen

		return stsOK()

	default:
		return sts(libprv.ClassFailure, CodeInvalidToken)
	}
}

func (o *ctx) Encrypt(bufs []libprv.Buffer) libprv.Status {
	if o.closed || o.phase < phaseOpen {
		return sts(libprv.ClassFailure, CodeInvalidHandle)
	}

	if len(bufs) < 4 ||
		bufs[0].Tag != libprv.TagStreamHeader || len(bufs[0].Data) != headerSize ||
		bufs[1].Tag != libprv.TagData || len(bufs[1].Data) > maxMessage ||
		bufs[2].Tag != libprv.TagStreamTrailer || len(bufs[2].Data) != trailerSize {
		return sts(libprv.ClassFailure, CodeInvalidToken)
	}

	putHeader(bufs[0].Data, rtData, len(bufs[1].Data)+trailerSize)
	mask(bufs[1].Data)
	copy(bufs[2].Data, trailerMagic)

	return stsOK()
}

func (o *ctx) Decrypt(bufs []libprv.Buffer) libprv.Status {
	if o.closed {
		return sts(libprv.ClassFailure, CodeInvalidHandle)
	}

	if len(bufs) < 4 || bufs[0].Tag != libprv.TagData {
		return sts(libprv.ClassFailure, CodeInvalidToken)
	}

	if o.phase == phaseClosing || o.phase == phaseDone {
		return sts(libprv.ClassContextExpired, CodeContextExpiredClean)
	}

	b := bufs[0].Data
	rt, body, total, ok := parseRecord(b)

	if !ok {
		return sts(libprv.ClassIncompleteMessage, CodeIncompleteMessage)
	}

	var extra []byte

	if rest := b[total:]; len(rest) > 0 {
		extra = rest
	}

	switch rt {
	case rtData:
		if len(body) < trailerSize || !bytes.Equal(body[len(body)-trailerSize:], trailerMagic) {
			return sts(libprv.ClassFailure, CodeMessageAltered)
		}

		payload := body[:len(body)-trailerSize]
		mask(payload)

		bufs[0] = libprv.Buffer{Tag: libprv.TagStreamHeader, Data: b[:headerSize]}
		bufs[1] = libprv.Buffer{Tag: libprv.TagData, Data: payload}
		bufs[2] = libprv.Buffer{Tag: libprv.TagStreamTrailer, Data: body[len(body)-trailerSize:]}

		if extra != nil {
			bufs[3] = libprv.Buffer{Tag: libprv.TagExtra, Data: extra}
		}

		return stsOK()

	case rtReneg:
		o.phase = phaseWelcome

		if extra != nil {
			bufs[3] = libprv.Buffer{Tag: libprv.TagExtra, Data: extra}
		}

		return sts(libprv.ClassRenegotiate, CodeRenegotiate)

	case rtExpire, rtClose:
		o.phase = phaseClosing

		if extra != nil {
			bufs[3] = libprv.Buffer{Tag: libprv.TagExtra, Data: extra}
		}

		return sts(libprv.ClassContextExpired, CodeContextExpiredClean)

	default:
		return sts(libprv.ClassFailure, CodeInvalidToken)
	}
}

func (o *ctx) ApplyShutdown() libprv.Status {
	if o.closed {
		return sts(libprv.ClassFailure, CodeInvalidHandle)
	}

	o.phase = phaseClosing

	return stsOK()
}

func (o *ctx) StreamSizes() (libprv.StreamSizes, libprv.Status) {
	if o.closed || o.phase < phaseOpen {
		return libprv.StreamSizes{}, sts(libprv.ClassFailure, CodeInvalidHandle)
	}

	return libprv.StreamSizes{
		Header:     headerSize,
		Trailer:    trailerSize,
		MaxMessage: maxMessage,
	}, stsOK()
}

func (o *ctx) Close() error {
	o.closed = true
	return nil
}
