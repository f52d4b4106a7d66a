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

package buffer

import "io"

type out struct {
	b []byte
	p int
}

func (o *out) Append(p []byte) {
	if o.p == len(o.b) {
		o.b = o.b[:0]
		o.p = 0
	}

	o.b = append(o.b, p...)
}

func (o *out) Drain(w io.Writer) (int, error) {
	var sum int

	for o.p < len(o.b) {
		n, err := w.Write(o.b[o.p:])
		sum += n
		o.p += n

		if err != nil {
			return sum, err
		} else if n == 0 {
			return sum, io.ErrShortWrite
		}
	}

	o.b = o.b[:0]
	o.p = 0

	return sum, nil
}

func (o *out) Empty() bool {
	return o.p == len(o.b)
}

func (o *out) Layout(header int, data []byte, trailer int) []byte {
	need := header + len(data) + trailer

	if cap(o.b) < need {
		o.b = make([]byte, need)
	} else {
		o.b = o.b[:need]
	}

	copy(o.b[header:], data)

	// the region is not pending until Seal
	o.p = need

	return o.b
}

func (o *out) Seal(n int) {
	if n > len(o.b) {
		panic("buffer: seal past end of laid-out region")
	}

	o.b = o.b[:n]
	o.p = 0
}
