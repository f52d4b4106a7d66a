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

// Package provider defines the narrow contract between the stream core and an
// external TLS security package. The provider performs all record and
// handshake cryptography; the core only sequences calls, moves bytes between
// its buffers and the transport, and dispatches on the returned Status.
//
// A provider implementation exposes exactly the operations the core consumes:
// credential acquisition, context initialization and continuation, message
// encryption and decryption on caller-owned buffer descriptors, shutdown
// control, and the stream size query. Everything else (cipher suites, X.509
// validation, trust roots) stays inside the provider.
package provider

import (
	"io"

	libalg "github.com/nabbar/secstream/algo"
)

// Direction selects which side of the session a credential is valid for.
type Direction uint8

const (
	// DirectionOutbound acquires a client-side credential.
	DirectionOutbound Direction = iota
	// DirectionInbound acquires a server-side credential.
	DirectionInbound
)

// Tag identifies the role of a Buffer within a call, mirroring the
// descriptor tagging convention of stream security packages.
type Tag uint8

const (
	// TagEmpty marks an unused descriptor slot.
	TagEmpty Tag = iota
	// TagToken marks opaque handshake bytes to deliver to the peer verbatim.
	TagToken
	// TagData marks application payload, encrypted or plain depending on call.
	TagData
	// TagExtra marks trailing input bytes belonging to the next record; the
	// caller must retain them for the following call.
	TagExtra
	// TagAlert marks a provider-produced alert blob; it must be released even
	// when unused.
	TagAlert
	// TagStreamHeader marks the record header region of an encrypt layout.
	TagStreamHeader
	// TagStreamTrailer marks the record trailer region of an encrypt layout.
	TagStreamTrailer
)

// Buffer is one caller-owned descriptor slot handed to the provider. The
// provider may rewrite both the tag and the data window in place; it never
// reallocates the backing array of an input slot.
type Buffer struct {
	Tag  Tag
	Data []byte
}

// StreamSizes reports the record framing parameters of an established
// session. They are fixed for the session lifetime and satisfy
// Header + MaxMessage + Trailer <= the provider advertised maximum.
type StreamSizes struct {
	Header     uint32
	Trailer    uint32
	MaxMessage uint32
}

// Credential is an opaque provider credential handle. Closing it releases
// the provider resource; the handle must not be used afterwards.
type Credential interface {
	io.Closer
}

// Context is an opaque provider session handle bound to one stream.
//
// Step, Encrypt and Decrypt operate in place on the descriptor slices: input
// windows are consumed or retagged, output token slots receive
// provider-allocated blobs that the caller releases through the owning
// Provider. Close releases the session; a closed context fails every call.
type Context interface {
	io.Closer

	// Step runs one handshake round. in[0] carries the raw inbound bytes
	// tagged TagToken, in[1] starts TagEmpty and may come back TagExtra with
	// the unconsumed suffix. out[0] (TagToken) and out[1] (TagAlert) receive
	// provider-allocated blobs when produced.
	Step(in []Buffer, out []Buffer) Status

	// Encrypt seals one record laid out as [header | plaintext | trailer]
	// across bufs[0..2], in place. The provider may shorten the trailer
	// window.
	Encrypt(bufs []Buffer) Status

	// Decrypt opens the leading record of bufs[0] (TagData) in place,
	// retagging sub-ranges as TagData plaintext and TagExtra remainder.
	Decrypt(bufs []Buffer) Status

	// ApplyShutdown registers the session shutdown control token; the
	// following Step calls emit the close notification for the peer.
	ApplyShutdown() Status

	// StreamSizes returns the record framing parameters. Valid only once the
	// handshake has completed with ClassOK.
	StreamSizes() (StreamSizes, Status)
}

// Provider is the entry point of a security package.
type Provider interface {
	// AcquireCredential installs a credential for the given direction. A
	// non-empty algs list is pinned verbatim; the provider reports a
	// mismatch through a failure Status. Strong-crypto policy is always
	// requested.
	AcquireCredential(dir Direction, algs []libalg.Algorithm) (Credential, Status)

	// InitContext performs the first handshake step with no input bytes.
	// serverName is a null-terminated UTF-16 run enabling name indication
	// and peer identity checks; nil disables identity binding. out[0]
	// receives the first token blob. The expected status class is
	// ClassContinueNeeded.
	InitContext(cred Credential, serverName []uint16, out []Buffer) (Context, Status)

	// FreeBuffer releases a provider-allocated output blob. Implementations
	// allocating from the Go heap may treat this as a no-op.
	FreeBuffer(p []byte)
}
