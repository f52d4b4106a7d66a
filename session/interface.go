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

// Package session owns one provider security context for the lifetime of a
// stream, and hides every allocation the provider makes on the caller's
// behalf behind scoped Blob holders.
//
// The first handshake step runs with no input bytes and is expected to
// return a continue-needed status together with the first token to deliver
// to the peer. Record framing parameters become queryable once the
// handshake has completed.
package session

import (
	"io"

	liberr "github.com/nabbar/golib/errors"
	libcrd "github.com/nabbar/secstream/credential"
	libprv "github.com/nabbar/secstream/provider"
)

// Blob is a scoped holder around a provider-allocated byte run. Release
// returns the memory to the provider and must be called on every path,
// typically by defer. A nil-safe zero Blob is returned when the provider
// produced no bytes.
type Blob interface {
	// Bytes returns the held byte run, nil once released.
	Bytes() []byte

	// Len returns the held byte count.
	Len() int

	// Release frees the provider allocation. Safe to call more than once.
	Release()
}

// Session wraps a provider context handle. At most one session exists per
// stream and it is never shared.
type Session interface {
	io.Closer

	// Step runs one handshake round on the raw inbound bytes described by
	// in. The returned Blob holds the token to forward to the peer and is
	// never nil; any alert blob the provider produced is released before
	// returning. After the call in[1] may carry TagExtra with the
	// unconsumed suffix.
	Step(in []libprv.Buffer) (libprv.Status, Blob)

	// Encrypt seals one record in place, see provider.Context.
	Encrypt(bufs []libprv.Buffer) libprv.Status

	// Decrypt opens the leading record in place, see provider.Context.
	Decrypt(bufs []libprv.Buffer) libprv.Status

	// ApplyShutdown registers the shutdown control token on the context.
	ApplyShutdown() libprv.Status

	// StreamSizes returns the cached record framing parameters, querying
	// the provider on first use. Callable only once the handshake reached
	// ClassOK.
	StreamSizes() (libprv.StreamSizes, liberr.Error)
}

// New creates the provider context for the given credential, running the
// first handshake step with no input. The returned Blob holds the first
// token to send to the peer; the caller releases it after copying.
//
// serverName is a null-terminated UTF-16 run enabling name indication and
// peer identity checks inside the provider; nil disables identity binding.
func New(cred libcrd.Credential, serverName []uint16) (Session, Blob, liberr.Error) {
	if cred == nil || cred.Provider() == nil || cred.Handle() == nil {
		return nil, nil, ErrorParamsEmpty.Error(nil)
	}

	if cred.Direction() != libprv.DirectionOutbound {
		return nil, nil, ErrorInboundInit.Error(nil)
	}

	var (
		prv = cred.Provider()
		out = []libprv.Buffer{
			{Tag: libprv.TagToken},
			{Tag: libprv.TagAlert},
		}
	)

	ctx, sts := prv.InitContext(cred.Handle(), serverName, out)

	// alert output is released whatever the outcome
	newBlob(prv, out[1].Data).Release()

	if sts.Class() != libprv.ClassContinueNeeded {
		newBlob(prv, out[0].Data).Release()

		if ctx != nil {
			_ = ctx.Close()
		}

		return nil, nil, ErrorInitContext.Error(sts.Err())
	}

	return &ses{
		p: prv,
		c: ctx,
	}, newBlob(prv, out[0].Data), nil
}
