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

package session

import (
	liberr "github.com/nabbar/golib/errors"
	libprv "github.com/nabbar/secstream/provider"
)

type ses struct {
	p libprv.Provider
	c libprv.Context

	ok bool
	sz libprv.StreamSizes
}

func (o *ses) Step(in []libprv.Buffer) (libprv.Status, Blob) {
	out := []libprv.Buffer{
		{Tag: libprv.TagToken},
		{Tag: libprv.TagAlert},
	}

	sts := o.c.Step(in, out)

	// alert output is released whatever the outcome
	newBlob(o.p, out[1].Data).Release()

	return sts, newBlob(o.p, out[0].Data)
}

func (o *ses) Encrypt(bufs []libprv.Buffer) libprv.Status {
	return o.c.Encrypt(bufs)
}

func (o *ses) Decrypt(bufs []libprv.Buffer) libprv.Status {
	return o.c.Decrypt(bufs)
}

func (o *ses) ApplyShutdown() libprv.Status {
	return o.c.ApplyShutdown()
}

func (o *ses) StreamSizes() (libprv.StreamSizes, liberr.Error) {
	if o.ok {
		return o.sz, nil
	}

	sz, sts := o.c.StreamSizes()

	if !sts.IsOK() {
		return libprv.StreamSizes{}, ErrorStreamSizes.Error(sts.Err())
	}

	o.sz = sz
	o.ok = true

	return o.sz, nil
}

func (o *ses) Close() error {
	if o.c == nil {
		return nil
	}

	c := o.c
	o.c = nil

	return c.Close()
}
