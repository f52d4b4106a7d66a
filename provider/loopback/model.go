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

package loopback

import (
	"unicode/utf16"

	libalg "github.com/nabbar/secstream/algo"
	libprv "github.com/nabbar/secstream/provider"
)

type prv struct{}

type crd struct {
	p *prv
	d libprv.Direction
}

func (o *crd) Close() error {
	return nil
}

func (o *prv) AcquireCredential(dir libprv.Direction, algs []libalg.Algorithm) (libprv.Credential, libprv.Status) {
	for _, a := range algs {
		if weak(a) {
			return nil, sts(libprv.ClassFailure, CodeAlgorithmMismatch)
		}
	}

	return &crd{
		p: o,
		d: dir,
	}, stsOK()
}

func (o *prv) InitContext(cred libprv.Credential, serverName []uint16, out []libprv.Buffer) (libprv.Context, libprv.Status) {
	c, k := cred.(*crd)

	if !k || c.p != o {
		return nil, sts(libprv.ClassFailure, CodeInvalidHandle)
	}

	if c.d != libprv.DirectionOutbound {
		return nil, sts(libprv.ClassFailure, CodeUnsupportedFunction)
	}

	if len(out) < 1 {
		return nil, sts(libprv.ClassFailure, CodeInvalidToken)
	}

	name := decodeName(serverName)
	out[0].Data = record(rtToken, []byte(tokHello+name))

	return &ctx{
		name:  name,
		phase: phaseWelcome,
	}, sts(libprv.ClassContinueNeeded, CodeContinueNeeded)
}

func (o *prv) FreeBuffer(_ []byte) {
	// blobs live on the Go heap
}

func decodeName(serverName []uint16) string {
	if len(serverName) > 0 && serverName[len(serverName)-1] == 0 {
		serverName = serverName[:len(serverName)-1]
	}

	if len(serverName) == 0 {
		return ""
	}

	return string(utf16.Decode(serverName))
}

// weak lists the tags refused under the strong-crypto policy.
func weak(a libalg.Algorithm) bool {
	switch a {
	case libalg.Rc2, libalg.Rc4, libalg.Rc5:
		return true
	case libalg.Des, libalg.Desx, libalg.TripleDes, libalg.TripleDes112, libalg.CylinkMek:
		return true
	case libalg.Md2, libalg.Md4, libalg.Md5, libalg.HughesMd5:
		return true
	case libalg.Unknown:
		return true
	default:
		return false
	}
}

func stsOK() libprv.Status {
	return libprv.NewStatus(libprv.ClassOK, CodeOK, nil)
}

func sts(cls libprv.Class, code uint32) libprv.Status {
	return libprv.NewStatus(cls, code, func() string {
		return CodeMessage(code)
	})
}
