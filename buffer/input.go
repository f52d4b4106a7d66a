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

const minRead = 1024

type inp struct {
	b []byte
	p int
}

func (o *inp) Fill(r io.Reader) (int, error) {
	m := 2 * o.p
	if m < minRead {
		m = minRead
	}

	if len(o.b) < m {
		nb := make([]byte, m)
		copy(nb, o.b[:o.p])
		o.b = nb
	}

	n, err := r.Read(o.b[o.p:])
	o.p += n

	if n > 0 {
		return n, nil
	} else if err == io.EOF {
		return 0, nil
	}

	return 0, err
}

func (o *inp) Consume(n int) {
	if n > o.p {
		panic("buffer: consume past end of input window")
	}

	copy(o.b, o.b[n:o.p])
	o.p -= n
}

func (o *inp) Bytes() []byte {
	return o.b[:o.p]
}

func (o *inp) Len() int {
	return o.p
}

func (o *inp) Empty() bool {
	return o.p == 0
}
