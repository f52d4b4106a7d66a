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

package stream_test

import (
	"bytes"
	"io"
	"net"

	libalg "github.com/nabbar/secstream/algo"
	lbloop "github.com/nabbar/secstream/provider/loopback"
	libstr "github.com/nabbar/secstream/stream"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stream - Basic exchange", func() {
	Context("request and response over the secured stream", func() {
		It("should complete with provider default algorithms", func() {
			client, server := net.Pipe()
			g := servePeer(server, httpScript(htmlResponse()))

			s, err := libstr.New().Domain(peerName).Initialize(acquire(), client)
			Expect(err).ToNot(HaveOccurred())

			n, err := s.Write([]byte("GET / HTTP/1.0\r\n\r\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(18))

			out, err := io.ReadAll(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(bytes.HasPrefix(out, []byte("HTTP/1.0 200 OK"))).To(BeTrue())
			Expect(bytes.HasSuffix(out, []byte("</html>"))).To(BeTrue())

			Expect(g.Wait()).ToNot(HaveOccurred())
			Expect(s.Close()).ToNot(HaveOccurred())
		})

		It("should complete with a valid pinned algorithm list", func() {
			client, server := net.Pipe()
			g := servePeer(server, httpScript(htmlResponse()))

			crd := acquire(libalg.Aes128, libalg.Ecdsa)

			s, err := libstr.New().Domain(peerName).Initialize(crd, client)
			Expect(err).ToNot(HaveOccurred())

			_, err = s.Write([]byte("GET / HTTP/1.0\r\n\r\n"))
			Expect(err).ToNot(HaveOccurred())

			out, err := io.ReadAll(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(bytes.HasPrefix(out, []byte("HTTP/1.0 200 OK"))).To(BeTrue())
			Expect(bytes.HasSuffix(out, []byte("</html>"))).To(BeTrue())

			Expect(g.Wait()).ToNot(HaveOccurred())
			Expect(s.Close()).ToNot(HaveOccurred())
		})

		It("should expose the wrapped transport", func() {
			client, server := net.Pipe()
			g := servePeer(server, httpScript(htmlResponse()))

			s, err := libstr.New().Domain(peerName).Initialize(acquire(), client)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Transport()).To(BeIdenticalTo(client))

			_, err = s.Write([]byte("GET / HTTP/1.0\r\n\r\n"))
			Expect(err).ToNot(HaveOccurred())

			_, err = io.ReadAll(s)
			Expect(err).ToNot(HaveOccurred())

			Expect(g.Wait()).ToNot(HaveOccurred())
			Expect(s.Close()).ToNot(HaveOccurred())
		})
	})

	Context("buffered read surface", func() {
		It("should preserve order across fill and consume", func() {
			client, server := net.Pipe()
			g := servePeer(server, func(p lbloop.Peer, c net.Conn) error {
				if err := p.Handshake(c); err != nil {
					return err
				}
				if err := p.Write(c, []byte("hello ")); err != nil {
					return err
				}
				return p.Write(c, []byte("world"))
			})

			s, err := libstr.New().Domain(peerName).Initialize(acquire(), client)
			Expect(err).ToNot(HaveOccurred())

			var got []byte
			for len(got) < 11 {
				w, er := s.Fill()
				Expect(er).ToNot(HaveOccurred())
				Expect(w).ToNot(BeEmpty())

				// consume in deliberately small steps
				n := len(w)
				if n > 4 {
					n = 4
				}

				got = append(got, w[:n]...)
				s.Consume(n)
			}

			Expect(string(got)).To(Equal("hello world"))
			Expect(g.Wait()).ToNot(HaveOccurred())
			Expect(s.Close()).ToNot(HaveOccurred())
		})
	})
})
