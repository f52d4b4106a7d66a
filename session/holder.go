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
	libprv "github.com/nabbar/secstream/provider"
)

// blb scopes one provider-allocated byte run. Every constructed holder must
// reach Release through the owning call path, including error exits.
type blb struct {
	p libprv.Provider
	b []byte
}

func newBlob(prv libprv.Provider, p []byte) Blob {
	return &blb{
		p: prv,
		b: p,
	}
}

func (o *blb) Bytes() []byte {
	return o.b
}

func (o *blb) Len() int {
	return len(o.b)
}

func (o *blb) Release() {
	if o.b == nil {
		return
	}

	b := o.b
	o.b = nil

	if o.p != nil {
		o.p.FreeBuffer(b)
	}
}
