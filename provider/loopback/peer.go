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
	"fmt"
	"io"
)

// Peer is a scripted server-side endpoint speaking the loopback record
// format over a raw transport. It drives the token exchange, exchanges
// application records, and can trigger renegotiation or clean expiry, so a
// client stream can be tested end to end without a real security package.
type Peer interface {
	// Handshake answers the client token exchange: expects the hello,
	// announces the peer name, expects the finish, confirms.
	Handshake(rw io.ReadWriter) error

	// Read returns the plaintext of the next data record. A close
	// notification from the client yields io.EOF.
	Read(r io.Reader) ([]byte, error)

	// ReadRequest accumulates data records until the plaintext contains the
	// given marker, then returns the whole plaintext.
	ReadRequest(r io.Reader, marker []byte) ([]byte, error)

	// Write frames p into data records, chunked to the record maximum.
	Write(w io.Writer, p []byte) error

	// Renegotiate interleaves a renegotiation with the application data:
	// the marker and the new announce are sent in one transport write, then
	// the exchange completes as in Handshake.
	Renegotiate(rw io.ReadWriter) error

	// Expire notifies a clean session end.
	Expire(w io.Writer) error

	// Close sends the close notification record.
	Close(w io.Writer) error
}

// NewPeer returns a peer announcing itself under the given name.
func NewPeer(name string) Peer {
	return &per{
		name: name,
	}
}

type per struct {
	name string
	rb   []byte
}

func (o *per) readRecord(r io.Reader) (byte, []byte, error) {
	for {
		if rt, body, total, ok := parseRecord(o.rb); ok {
			out := make([]byte, len(body))
			copy(out, body)
			o.rb = append(o.rb[:0:0], o.rb[total:]...)

			return rt, out, nil
		}

		tmp := make([]byte, 512)
		n, err := r.Read(tmp)

		if n > 0 {
			o.rb = append(o.rb, tmp[:n]...)
			continue
		}

		if err == nil {
			err = io.ErrUnexpectedEOF
		}

		return 0, nil, err
	}
}

func (o *per) Handshake(rw io.ReadWriter) error {
	rt, body, err := o.readRecord(rw)

	if err != nil {
		return err
	} else if rt != rtToken || !bytes.HasPrefix(body, []byte(tokHello)) {
		return fmt.Errorf("loopback peer: unexpected client hello record 0x%02x", rt)
	}

	if _, err = rw.Write(record(rtToken, []byte(tokWelcome+o.name))); err != nil {
		return err
	}

	return o.finish(rw)
}

// finish waits the client finish token and confirms the exchange.
func (o *per) finish(rw io.ReadWriter) error {
	rt, body, err := o.readRecord(rw)

	if err != nil {
		return err
	} else if rt != rtToken || string(body) != tokFinish {
		return fmt.Errorf("loopback peer: unexpected client finish record 0x%02x", rt)
	}

	_, err = rw.Write(record(rtToken, []byte(tokTrusted)))

	return err
}

func (o *per) Read(r io.Reader) ([]byte, error) {
	rt, body, err := o.readRecord(r)

	if err != nil {
		return nil, err
	}

	switch rt {
	case rtData:
		if len(body) < trailerSize || !bytes.Equal(body[len(body)-trailerSize:], trailerMagic) {
			return nil, fmt.Errorf("loopback peer: altered data record")
		}

		payload := body[:len(body)-trailerSize]
		mask(payload)

		return payload, nil

	case rtClose:
		return nil, io.EOF

	default:
		return nil, fmt.Errorf("loopback peer: unexpected record 0x%02x", rt)
	}
}

func (o *per) ReadRequest(r io.Reader, marker []byte) ([]byte, error) {
	var req []byte

	for !bytes.Contains(req, marker) {
		p, err := o.Read(r)

		if err != nil {
			return req, err
		}

		req = append(req, p...)
	}

	return req, nil
}

func (o *per) Write(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n := len(p)
		if n > maxMessage {
			n = maxMessage
		}

		rec := make([]byte, headerSize+n+trailerSize)
		putHeader(rec, rtData, n+trailerSize)
		copy(rec[headerSize:], p[:n])
		mask(rec[headerSize : headerSize+n])
		copy(rec[headerSize+n:], trailerMagic)

		if _, err := w.Write(rec); err != nil {
			return err
		}

		p = p[n:]
	}

	return nil
}

func (o *per) Renegotiate(rw io.ReadWriter) error {
	// one transport write for the marker and the announce, so the client
	// sees the announce as extra bytes behind the renegotiation record
	b := record(rtReneg, nil)
	b = append(b, record(rtToken, []byte(tokWelcome+o.name))...)

	if _, err := rw.Write(b); err != nil {
		return err
	}

	return o.finish(rw)
}

func (o *per) Expire(w io.Writer) error {
	_, err := w.Write(record(rtExpire, nil))
	return err
}

func (o *per) Close(w io.Writer) error {
	_, err := w.Write(record(rtClose, nil))
	return err
}
