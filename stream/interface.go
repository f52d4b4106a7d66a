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

// Package stream exposes a transparent plaintext byte stream over an
// arbitrary bidirectional transport, delegating all record and handshake
// cryptography to an external security provider.
//
// The stream owns the encrypted-in, decrypted-in and encrypted-out buffers,
// sequences the provider calls, converts the provider status codes into
// buffer advancement, handshake re-entry or end-of-stream, and surfaces a
// plain read / write / flush / shutdown contract. Records arrive in
// arbitrary fragments; partial input, renegotiation and orderly shutdown
// are handled here.
//
// Access is single-goroutine cooperative: a stream has exclusive ownership
// of its provider context and holds no internal lock. The caller serializes
// across goroutines when needed.
package stream

import (
	"io"
	"unicode/utf16"

	liblog "github.com/nabbar/golib/logger"
	libbuf "github.com/nabbar/secstream/buffer"
	libcrd "github.com/nabbar/secstream/credential"
	libses "github.com/nabbar/secstream/session"
)

// Flusher is the optional flush capability of a transport. Transports
// without it (net.Conn, net.Pipe) are flushed implicitly by their writes.
type Flusher interface {
	Flush() error
}

// Stream is an established secured byte stream.
//
// Read and Write follow the io contracts. Writes fail once the session is
// shut down; reads drain the remaining plaintext then return io.EOF. When a
// transport write fails transiently, the caller retries Write with the same
// leading bytes: the pending encrypted frame is never produced twice.
type Stream interface {
	io.Reader
	io.Writer
	io.Closer

	// Fill returns the currently buffered plaintext window, decrypting
	// records from the transport as needed. An empty window means
	// end-of-stream.
	Fill() ([]byte, error)

	// Consume drops the leading n bytes of the buffered plaintext window.
	// Panics when n exceeds the window.
	Consume(n int)

	// Flush flushes the underlying transport. Encrypted bytes already
	// queued are written by the write and handshake paths, not by Flush.
	Flush() error

	// Shutdown performs an orderly session shutdown. It is idempotent.
	Shutdown() error

	// Transport returns the wrapped transport.
	Transport() io.ReadWriter
}

// Builder configures and drives the initial handshake of a stream.
type Builder interface {
	// Domain sets the server name used for name indication and peer
	// identity checking. An empty string disables identity binding.
	Domain(domain string) Builder

	// Logger sets the logger retrieval function used by the stream.
	Logger(fct liblog.FuncLog) Builder

	// Initialize creates the provider context for the credential and runs
	// the handshake to completion over the given transport. The returned
	// stream owns the credential.
	Initialize(cred libcrd.Credential, transport io.ReadWriter) (Stream, error)
}

// New returns an empty stream builder.
func New() Builder {
	return &bld{}
}

type bld struct {
	dom []uint16
	fog liblog.FuncLog
}

func (o *bld) Domain(domain string) Builder {
	if domain == "" {
		o.dom = nil
		return o
	}

	u := utf16.Encode([]rune(domain))
	o.dom = append(u, 0)

	return o
}

func (o *bld) Logger(fct liblog.FuncLog) Builder {
	o.fog = fct
	return o
}

func (o *bld) Initialize(cred libcrd.Credential, transport io.ReadWriter) (Stream, error) {
	if cred == nil || transport == nil {
		return nil, ErrorParamsEmpty.Error(nil)
	}

	ses, tok, err := libses.New(cred, o.dom)

	if err != nil {
		return nil, err
	}

	s := &stm{
		crd: cred,
		ses: ses,
		dom: o.dom,
		trs: transport,
		buf: libbuf.New(),
		st: state{
			stg:       stageInitializing,
			moreCalls: true,
		},
		needsRead: true,
		fog:       o.fog,
	}

	s.buf.Out().Append(tok.Bytes())
	tok.Release()

	if _, e := s.initialize(); e != nil {
		_ = ses.Close()
		return nil, e
	}

	return s, nil
}
