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

// Package buffer holds the three cursored byte buffers of a secured stream:
// the encrypted inbound buffer fed from the transport, the decrypted inbound
// buffer delivered to the caller, and the outbound buffer drained to the
// transport.
//
// The backing arrays are handed to the security provider by reference, so
// none of them is ever reallocated inside a provider call; growth happens
// only between calls. Cursor misuse (consuming or skipping past the valid
// window) is a program bug and panics.
package buffer

import "io"

// Input is the encrypted inbound buffer. The valid window is [0, Len()):
// bytes read from the transport and not yet consumed by the provider.
type Input interface {
	// Fill grows the buffer to at least max(1024, 2*Len()) and reads once
	// from r into the tail, advancing the cursor by the bytes read. A read
	// returning 0 with io.EOF reports (0, nil): end-of-stream is a caller
	// decision.
	Fill(r io.Reader) (int, error)

	// Consume drops the leading n bytes, shifting the remainder down to
	// offset 0. Panics when n exceeds the valid window.
	Consume(n int)

	// Bytes returns the valid window. The slice aliases the backing array.
	Bytes() []byte

	// Len returns the valid byte count.
	Len() int

	// Empty reports whether the valid window is empty.
	Empty() bool
}

// Output is the outbound buffer. The valid window is the not-yet-written
// pending region.
type Output interface {
	// Append queues p behind any pending bytes.
	Append(p []byte)

	// Drain writes the pending region to w until empty. A short write is
	// not an error; a zero-byte write surfaces io.ErrShortWrite. Returns
	// the bytes written.
	Drain(w io.Writer) (int, error)

	// Empty reports whether no bytes are pending.
	Empty() bool

	// Layout prepares an in-place encrypt region [header | data | trailer]
	// and returns it. Callable only when Empty; the region stays outside
	// the pending window until Seal.
	Layout(header int, data []byte, trailer int) []byte

	// Seal truncates the laid-out region to n bytes and marks the whole of
	// it pending. The provider may have produced a shorter trailer than the
	// reserved size.
	Seal(n int)
}

// Plain is the decrypted inbound buffer, holding at most one record's worth
// of plaintext. The valid window is the not-yet-delivered region.
type Plain interface {
	// Load clears the buffer and copies one decrypted record in.
	Load(p []byte)

	// Buffered returns the valid window without consuming it.
	Buffered() []byte

	// Skip advances the cursor by n delivered bytes. Panics when n exceeds
	// the valid window.
	Skip(n int)

	// Empty reports whether the valid window is empty.
	Empty() bool
}

// Set groups the three buffers of one stream.
type Set interface {
	In() Input
	Out() Output
	Plain() Plain
}

// New returns an empty buffer set.
func New() Set {
	return &set{
		i: &inp{},
		o: &out{},
		p: &pln{},
	}
}

type set struct {
	i *inp
	o *out
	p *pln
}

func (o *set) In() Input {
	return o.i
}

func (o *set) Out() Output {
	return o.o
}

func (o *set) Plain() Plain {
	return o.p
}
