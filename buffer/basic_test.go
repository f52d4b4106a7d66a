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

package buffer_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/nabbar/secstream/buffer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// shortWriter accepts at most per bytes per call and left bytes in total;
// zero once exhausted.
type shortWriter struct {
	sink bytes.Buffer
	per  int
	left int
}

func (o *shortWriter) Write(p []byte) (int, error) {
	if o.left <= 0 {
		return 0, nil
	}

	n := len(p)
	if n > o.per {
		n = o.per
	}
	if n > o.left {
		n = o.left
	}

	o.left -= n

	return o.sink.Write(p[:n])
}

var _ = Describe("Buffer - Input", func() {
	Context("Fill", func() {
		It("should grow and advance by the bytes read", func() {
			s := New()

			n, err := s.In().Fill(strings.NewReader("abcdef"))
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(6))
			Expect(s.In().Len()).To(Equal(6))
			Expect(string(s.In().Bytes())).To(Equal("abcdef"))
		})

		It("should report a zero read on EOF without error", func() {
			s := New()

			n, err := s.In().Fill(strings.NewReader(""))
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(0))
			Expect(s.In().Empty()).To(BeTrue())
		})

		It("should accumulate across calls", func() {
			s := New()

			_, _ = s.In().Fill(strings.NewReader("abc"))
			_, _ = s.In().Fill(strings.NewReader("def"))
			Expect(string(s.In().Bytes())).To(Equal("abcdef"))
		})
	})

	Context("Consume", func() {
		It("should shift the remainder down", func() {
			s := New()

			_, _ = s.In().Fill(strings.NewReader("abcdef"))
			s.In().Consume(4)
			Expect(string(s.In().Bytes())).To(Equal("ef"))
			Expect(s.In().Len()).To(Equal(2))

			s.In().Consume(2)
			Expect(s.In().Empty()).To(BeTrue())
		})

		It("should panic past the window", func() {
			s := New()

			_, _ = s.In().Fill(strings.NewReader("ab"))
			Expect(func() { s.In().Consume(3) }).To(Panic())
		})
	})
})

var _ = Describe("Buffer - Output", func() {
	Context("Append and Drain", func() {
		It("should drain everything across short writes", func() {
			s := New()
			w := &shortWriter{per: 3, left: 64}

			s.Out().Append([]byte("hello world"))
			Expect(s.Out().Empty()).To(BeFalse())

			n, err := s.Out().Drain(w)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(11))
			Expect(w.sink.String()).To(Equal("hello world"))
			Expect(s.Out().Empty()).To(BeTrue())
		})

		It("should surface a zero-byte write", func() {
			s := New()
			w := &shortWriter{per: 4, left: 4}

			s.Out().Append([]byte("too much data"))

			n, err := s.Out().Drain(w)
			Expect(err).To(Equal(io.ErrShortWrite))
			Expect(n).To(Equal(4))
			Expect(s.Out().Empty()).To(BeFalse())
		})

		It("should resume draining after a stall", func() {
			s := New()
			w := &shortWriter{per: 4, left: 4}

			s.Out().Append([]byte("12345678"))
			_, err := s.Out().Drain(w)
			Expect(err).To(Equal(io.ErrShortWrite))

			w.left = 16
			n, err := s.Out().Drain(w)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(4))
			Expect(w.sink.String()).To(Equal("12345678"))
		})
	})

	Context("Layout and Seal", func() {
		It("should reserve header and trailer around the payload", func() {
			s := New()

			region := s.Out().Layout(5, []byte("data"), 3)
			Expect(region).To(HaveLen(12))
			Expect(string(region[5:9])).To(Equal("data"))

			// not pending until sealed
			Expect(s.Out().Empty()).To(BeTrue())

			s.Out().Seal(10)

			var sink bytes.Buffer
			n, err := s.Out().Drain(&sink)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(10))
		})

		It("should panic sealing past the region", func() {
			s := New()

			s.Out().Layout(2, []byte("x"), 2)
			Expect(func() { s.Out().Seal(6) }).To(Panic())
		})
	})
})

var _ = Describe("Buffer - Plain", func() {
	Context("Load, Buffered, Skip", func() {
		It("should deliver the loaded window", func() {
			s := New()

			s.Plain().Load([]byte("plaintext"))
			Expect(s.Plain().Empty()).To(BeFalse())
			Expect(string(s.Plain().Buffered())).To(Equal("plaintext"))

			s.Plain().Skip(5)
			Expect(string(s.Plain().Buffered())).To(Equal("text"))

			s.Plain().Skip(4)
			Expect(s.Plain().Empty()).To(BeTrue())
		})

		It("should replace the content on reload", func() {
			s := New()

			s.Plain().Load([]byte("first"))
			s.Plain().Skip(5)
			s.Plain().Load([]byte("second"))
			Expect(string(s.Plain().Buffered())).To(Equal("second"))
		})

		It("should panic skipping past the window", func() {
			s := New()

			s.Plain().Load([]byte("ab"))
			Expect(func() { s.Plain().Skip(3) }).To(Panic())
		})
	})
})
