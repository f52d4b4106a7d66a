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

package credential

import (
	libalg "github.com/nabbar/secstream/algo"
	libprv "github.com/nabbar/secstream/provider"
)

type crd struct {
	p libprv.Provider
	h libprv.Credential
	d libprv.Direction
	a []libalg.Algorithm
}

func (o *crd) Provider() libprv.Provider {
	return o.p
}

func (o *crd) Handle() libprv.Credential {
	return o.h
}

func (o *crd) Direction() libprv.Direction {
	return o.d
}

func (o *crd) Algorithms() []libalg.Algorithm {
	if len(o.a) < 1 {
		return nil
	}

	res := make([]libalg.Algorithm, len(o.a))
	copy(res, o.a)

	return res
}

func (o *crd) Close() error {
	if o.h == nil {
		return nil
	}

	h := o.h
	o.h = nil

	return h.Close()
}
