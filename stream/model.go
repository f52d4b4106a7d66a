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
	"io"

	liblog "github.com/nabbar/golib/logger"
	loglvl "github.com/nabbar/golib/logger/level"
	libbuf "github.com/nabbar/secstream/buffer"
	libcrd "github.com/nabbar/secstream/credential"
	libses "github.com/nabbar/secstream/session"
)

type stm struct {
	crd libcrd.Credential
	ses libses.Session
	dom []uint16
	trs io.ReadWriter
	buf libbuf.Set
	st  state
	fog liblog.FuncLog

	// needsRead is set when the handshake or decrypt step stalled waiting
	// for more transport input.
	needsRead bool

	// pnd is the plaintext byte count of the encrypted frame currently
	// pending in the outbound buffer, so an interrupted Write can account
	// for it on retry without re-encrypting.
	pnd int
}

func (o *stm) Transport() io.ReadWriter {
	return o.trs
}

func (o *stm) Read(p []byte) (int, error) {
	b, err := o.Fill()

	if err != nil {
		return 0, err
	} else if len(b) == 0 {
		return 0, io.EOF
	}

	n := copy(p, b)
	o.Consume(n)

	return n, nil
}

func (o *stm) Fill() ([]byte, error) {
	for o.buf.Plain().Empty() {
		if o.st.stg == stageShutdown {
			break
		}

		if o.st.stg == stageInitializing && !o.st.shuttingDown {
			// renegotiation in progress, drive it before more plaintext
			if ok, err := o.initialize(); err != nil {
				return nil, err
			} else if !ok {
				break
			}

			continue
		}

		if o.needsRead {
			if n, err := o.readIn(); err != nil {
				return nil, err
			} else if n == 0 {
				break
			}

			o.needsRead = false
		}

		if err := o.decrypt(); err != nil {
			return nil, err
		}
	}

	return o.buf.Plain().Buffered(), nil
}

func (o *stm) Consume(n int) {
	o.buf.Plain().Skip(n)
}

func (o *stm) Write(p []byte) (int, error) {
	ok, err := o.initialize()

	if err != nil {
		return 0, err
	} else if !ok {
		return 0, ErrorContextExpired.Error(nil)
	}

	var (
		max  = int(o.st.sizes.MaxMessage)
		done int
	)

	// a frame left over from an interrupted call covers the leading bytes
	// of p; drain it instead of producing a duplicate record. The handshake
	// driver may already have drained it during a renegotiation.
	if !o.buf.Out().Empty() {
		if _, e := o.writeOut(); e != nil {
			return 0, e
		}
	}

	if o.pnd > 0 {
		if o.pnd > len(p) {
			panic("stream: retried write shorter than pending frame")
		}

		done = o.pnd
		o.pnd = 0
	}

	for done < len(p) {
		n := len(p) - done
		if n > max {
			n = max
		}

		if e := o.encrypt(p[done : done+n]); e != nil {
			return done, e
		}

		o.pnd = n

		if _, e := o.writeOut(); e != nil {
			return done, e
		}

		done += n
		o.pnd = 0
	}

	return done, nil
}

func (o *stm) Flush() error {
	return o.flushTransport()
}

// Close releases the provider context then the credential, in that order.
// It does not run the shutdown exchange; use Shutdown for an orderly close.
func (o *stm) Close() error {
	var err error

	if o.ses != nil {
		err = o.ses.Close()
		o.ses = nil
	}

	if o.crd != nil {
		if e := o.crd.Close(); e != nil && err == nil {
			err = e
		}
		o.crd = nil
	}

	return err
}

func (o *stm) flushTransport() error {
	if f, k := o.trs.(Flusher); k {
		return f.Flush()
	}

	return nil
}

func (o *stm) readIn() (int, error) {
	return o.buf.In().Fill(o.trs)
}

func (o *stm) writeOut() (int, error) {
	n, err := o.buf.Out().Drain(o.trs)

	if err == io.ErrShortWrite {
		return n, ErrorTransportWrite.Error(err)
	}

	return n, err
}

func (o *stm) logger() liblog.Logger {
	if o.fog != nil {
		if l := o.fog(); l != nil {
			return l
		}
	}

	return liblog.GetDefault()
}

func (o *stm) logDebug(msg string) {
	o.logger().Entry(loglvl.DebugLevel, msg).FieldAdd("tls.stage", o.st.stg.String()).Log()
}
