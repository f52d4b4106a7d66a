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

// initialize drives the handshake until the stream is established or shut
// down. It reports true when streaming, false when shut down.
//
// Each iteration drains pending output, flushes, transitions on moreCalls,
// reads when stalled, then runs one provider step, in that order.
func (o *stm) initialize() (bool, error) {
	for {
		switch o.st.stg {
		case stageStreaming:
			return true, nil
		case stageShutdown:
			return false, nil
		}

		if n, err := o.writeOut(); err != nil {
			return false, err
		} else if n > 0 {
			o.st.needsFlush = true
		}

		if o.st.needsFlush {
			if err := o.flushTransport(); err != nil {
				return false, err
			}

			o.st.needsFlush = false
		}

		if !o.st.moreCalls {
			if o.st.shuttingDown {
				o.st = state{
					stg: stageShutdown,
				}
				o.logDebug("secured stream shut down")
			} else {
				sz, err := o.ses.StreamSizes()

				if err != nil {
					return false, err
				}

				o.st = state{
					stg:   stageStreaming,
					sizes: sz,
				}
				o.logDebug("handshake complete")
			}

			continue
		}

		if o.needsRead {
			if n, err := o.readIn(); err != nil {
				return false, err
			} else if n == 0 {
				return false, ErrorUnexpectedEOF.Error(nil)
			}
		}

		if err := o.stepInitialize(); err != nil {
			return false, err
		}
	}
}

// stepInitialize runs one provider handshake round on the raw inbound
// bytes. Whether a token was produced does not distinguish the continue and
// done cases; only the status class does.
func (o *stm) stepInitialize() error {
	in := []libprv.Buffer{
		{Tag: libprv.TagToken, Data: o.buf.In().Bytes()},
		{Tag: libprv.TagEmpty},
	}

	sts, tok := o.ses.Step(in)
	defer tok.Release()

	switch sts.Class() {
	case libprv.ClassContinueNeeded:
		o.consumeStep(in)
		o.buf.Out().Append(tok.Bytes())

		return nil

	case libprv.ClassIncompleteMessage:
		o.needsRead = true

		return nil

	case libprv.ClassOK:
		o.consumeStep(in)

		if tok.Len() > 0 {
			o.buf.Out().Append(tok.Bytes())
		}

		// bytes left behind the final flight are early application data;
		// they must be opened before the streaming transition caches the
		// record sizes, which the decrypt path does not use
		if !o.buf.In().Empty() {
			if err := o.decrypt(); err != nil {
				return err
			}
		}

		if o.st.stg == stageInitializing {
			o.st.moreCalls = false
		}

		return nil

	default:
		return ErrorHandshake.Error(sts.Err())
	}
}

// consumeStep drops the handshake bytes the provider consumed, keeping any
// suffix it tagged as belonging to the next record.
func (o *stm) consumeStep(in []libprv.Buffer) {
	var extra int

	if in[1].Tag == libprv.TagExtra {
		extra = len(in[1].Data)
	}

	o.buf.In().Consume(o.buf.In().Len() - extra)
	o.needsRead = o.buf.In().Empty()
}
