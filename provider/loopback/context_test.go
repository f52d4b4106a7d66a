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

package loopback_test

import (
	"net"
	"unicode/utf16"

	libprv "github.com/nabbar/secstream/provider"
	lbloop "github.com/nabbar/secstream/provider/loopback"
	"golang.org/x/sync/errgroup"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func name16(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

func tokenBufs(p []byte) ([]libprv.Buffer, []libprv.Buffer) {
	return []libprv.Buffer{
			{Tag: libprv.TagToken, Data: p},
			{Tag: libprv.TagEmpty},
		}, []libprv.Buffer{
			{Tag: libprv.TagToken},
			{Tag: libprv.TagAlert},
		}
}

var _ = Describe("Loopback - Context", func() {
	Context("full exchange against a scripted peer", func() {
		It("should open, seal and unseal records", func() {
			client, server := net.Pipe()
			peer := lbloop.NewPeer("unit.test")

			var g errgroup.Group

			g.Go(func() error {
				defer func() {
					_ = server.Close()
				}()

				if err := peer.Handshake(server); err != nil {
					return err
				}

				if _, err := peer.Read(server); err != nil {
					return err
				}

				return peer.Write(server, []byte("pong"))
			})

			prv := lbloop.New()

			crd, sts := prv.AcquireCredential(libprv.DirectionOutbound, nil)
			Expect(sts.IsOK()).To(BeTrue())

			out := []libprv.Buffer{
				{Tag: libprv.TagToken},
				{Tag: libprv.TagAlert},
			}

			ctx, sts := prv.InitContext(crd, name16("unit.test"), out)
			Expect(sts.Class()).To(Equal(libprv.ClassContinueNeeded))
			Expect(ctx).ToNot(BeNil())

			_, err := client.Write(out[0].Data)
			Expect(err).ToNot(HaveOccurred())

			// announce from the peer
			buf := make([]byte, 2048)
			n, err := client.Read(buf)
			Expect(err).ToNot(HaveOccurred())

			in, o2 := tokenBufs(buf[:n])
			sts = ctx.Step(in, o2)
			Expect(sts.Class()).To(Equal(libprv.ClassContinueNeeded))
			Expect(o2[0].Data).ToNot(BeEmpty())

			_, err = client.Write(o2[0].Data)
			Expect(err).ToNot(HaveOccurred())

			// confirmation from the peer
			n, err = client.Read(buf)
			Expect(err).ToNot(HaveOccurred())

			in, o2 = tokenBufs(buf[:n])
			sts = ctx.Step(in, o2)
			Expect(sts.IsOK()).To(BeTrue())

			sz, sts := ctx.StreamSizes()
			Expect(sts.IsOK()).To(BeTrue())
			Expect(sz.MaxMessage).To(BeNumerically(">", 0))

			// seal "ping" into the laid-out region
			h, t := int(sz.Header), int(sz.Trailer)
			region := make([]byte, h+4+t)
			copy(region[h:], "ping")

			ebufs := []libprv.Buffer{
				{Tag: libprv.TagStreamHeader, Data: region[:h]},
				{Tag: libprv.TagData, Data: region[h : h+4]},
				{Tag: libprv.TagStreamTrailer, Data: region[h+4:]},
				{Tag: libprv.TagEmpty},
			}

			Expect(ctx.Encrypt(ebufs).IsOK()).To(BeTrue())

			_, err = client.Write(region)
			Expect(err).ToNot(HaveOccurred())

			// peer answer, unsealed in place
			n, err = client.Read(buf)
			Expect(err).ToNot(HaveOccurred())

			// a truncated window first: the provider must stall
			dbufs := []libprv.Buffer{
				{Tag: libprv.TagData, Data: buf[:3]},
				{Tag: libprv.TagEmpty},
				{Tag: libprv.TagEmpty},
				{Tag: libprv.TagEmpty},
			}
			Expect(ctx.Decrypt(dbufs).Class()).To(Equal(libprv.ClassIncompleteMessage))

			dbufs = []libprv.Buffer{
				{Tag: libprv.TagData, Data: buf[:n]},
				{Tag: libprv.TagEmpty},
				{Tag: libprv.TagEmpty},
				{Tag: libprv.TagEmpty},
			}
			Expect(ctx.Decrypt(dbufs).IsOK()).To(BeTrue())

			var plain []byte
			for _, b := range dbufs[1:] {
				if b.Tag == libprv.TagData {
					plain = b.Data
					break
				}
			}

			Expect(string(plain)).To(Equal("pong"))

			Expect(g.Wait()).ToNot(HaveOccurred())
			Expect(ctx.Close()).ToNot(HaveOccurred())
			_ = client.Close()
		})
	})

	Context("identity binding", func() {
		It("should refuse a peer announcing another name", func() {
			client, server := net.Pipe()
			peer := lbloop.NewPeer("other.test")

			var g errgroup.Group

			g.Go(func() error {
				defer func() {
					_ = server.Close()
				}()

				// the exchange aborts client side, the error here is expected
				return peer.Handshake(server)
			})

			prv := lbloop.New()
			crd, _ := prv.AcquireCredential(libprv.DirectionOutbound, nil)

			out := []libprv.Buffer{
				{Tag: libprv.TagToken},
				{Tag: libprv.TagAlert},
			}

			ctx, sts := prv.InitContext(crd, name16("unit.test"), out)
			Expect(sts.Class()).To(Equal(libprv.ClassContinueNeeded))

			_, err := client.Write(out[0].Data)
			Expect(err).ToNot(HaveOccurred())

			buf := make([]byte, 2048)
			n, err := client.Read(buf)
			Expect(err).ToNot(HaveOccurred())

			in, o2 := tokenBufs(buf[:n])
			sts = ctx.Step(in, o2)
			Expect(sts.Class()).To(Equal(libprv.ClassFailure))
			Expect(sts.Code()).To(Equal(lbloop.CodeWrongPrincipal))

			_ = client.Close()
			_ = g.Wait()
		})
	})
})
