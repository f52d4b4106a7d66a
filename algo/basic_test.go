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

package algo_test

import (
	. "github.com/nabbar/secstream/algo"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Algo - Parsing", func() {
	Context("Parse", func() {
		It("should parse canonical codes", func() {
			Expect(Parse("aes128")).To(Equal(Aes128))
			Expect(Parse("ecdsa")).To(Equal(Ecdsa))
			Expect(Parse("rc2")).To(Equal(Rc2))
			Expect(Parse("3des")).To(Equal(TripleDes))
		})

		It("should clean up separators and quotes", func() {
			Expect(Parse("AES-128")).To(Equal(Aes128))
			Expect(Parse("'aes_256'")).To(Equal(Aes256))
			Expect(Parse("\"sha 384\"")).To(Equal(Sha384))
			Expect(Parse("triple.des")).To(Equal(TripleDes))
		})

		It("should return Unknown on garbage", func() {
			Expect(Parse("")).To(Equal(Unknown))
			Expect(Parse("rot13")).To(Equal(Unknown))
		})
	})

	Context("ParseInt", func() {
		It("should match the numeric tag table", func() {
			for _, a := range List() {
				Expect(ParseInt(a.Int())).To(Equal(a))
			}
		})

		It("should clamp out-of-range values to Unknown", func() {
			Expect(ParseInt(0)).To(Equal(Unknown))
			Expect(ParseInt(-5)).To(Equal(Unknown))
			Expect(ParseInt(1)).To(Equal(Unknown))
		})
	})

	Context("ParseBytes", func() {
		It("should behave as Parse", func() {
			Expect(ParseBytes([]byte("ecdh"))).To(Equal(Ecdh))
		})
	})

	Context("Check", func() {
		It("should accept every listed tag", func() {
			for _, a := range List() {
				Expect(Check(a.Uint32())).To(BeTrue())
				Expect(a.Check()).To(BeTrue())
			}
		})

		It("should refuse unknown raw values", func() {
			Expect(Check(0)).To(BeFalse())
			Expect(Check(0xdead)).To(BeFalse())
		})
	})

	Context("List", func() {
		It("should round-trip every code through Parse", func() {
			for _, s := range ListString() {
				Expect(Parse(s)).ToNot(Equal(Unknown))
			}
		})

		It("should hold unique non-empty codes", func() {
			seen := map[string]bool{}
			for _, a := range List() {
				Expect(a.Code()).ToNot(BeEmpty())
				Expect(seen[a.Code()]).To(BeFalse())
				seen[a.Code()] = true
			}
		})
	})
})
