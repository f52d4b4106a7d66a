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

// Package loopback implements the full provider contract without any
// cryptography, for hermetic tests and examples.
//
// Records are framed with a one byte type, a four byte length, an obfuscated
// body and a fixed trailer; handshake tokens carry a plain text exchange
// with server name verification and algorithm pinning. The package also
// ships a scripted Peer speaking the same record format over any transport,
// so a client stream can be exercised end to end, including renegotiation,
// clean expiry and shutdown.
//
// This is NOT a security product: it provides the provider behaviors, not
// confidentiality.
package loopback

import (
	libprv "github.com/nabbar/secstream/provider"
)

// Numeric status codes reported by this provider. The values follow the
// usual platform security status table so that callers matching on codes
// behave the same against a native package.
const (
	CodeOK                  uint32 = 0x00000000
	CodeContinueNeeded      uint32 = 0x00090312
	CodeContextExpiredClean uint32 = 0x00090317
	CodeRenegotiate         uint32 = 0x00090321
	CodeInvalidHandle       uint32 = 0x80090301
	CodeUnsupportedFunction uint32 = 0x80090302
	CodeInvalidToken        uint32 = 0x80090308
	CodeMessageAltered      uint32 = 0x8009030f
	CodeIncompleteMessage   uint32 = 0x80090318
	CodeWrongPrincipal      uint32 = 0x80090322
	CodeAlgorithmMismatch   uint32 = 0x80090331
)

// CodeMessage returns the formatted message for a loopback status code, or
// an empty string for an unknown code.
func CodeMessage(code uint32) string {
	switch code {
	case CodeOK:
		return "the operation completed successfully"
	case CodeContinueNeeded:
		return "the function completed successfully, but must be called again to complete the context"
	case CodeContextExpiredClean:
		return "the context has expired and can no longer be used"
	case CodeRenegotiate:
		return "the context data must be renegotiated with the peer"
	case CodeInvalidHandle:
		return "the handle specified is invalid"
	case CodeUnsupportedFunction:
		return "the function requested is not supported"
	case CodeInvalidToken:
		return "the token supplied to the function is invalid"
	case CodeMessageAltered:
		return "the message or signature supplied for verification has been altered"
	case CodeIncompleteMessage:
		return "the supplied message is incomplete, the signature was not verified"
	case CodeWrongPrincipal:
		return "the target principal name is incorrect"
	case CodeAlgorithmMismatch:
		return "the client and server cannot communicate, because they do not possess a common algorithm"
	}

	return ""
}

// New returns a loopback provider. Credentials acquired with a pinned
// algorithm list containing a weak tag fail with CodeAlgorithmMismatch, the
// strong-crypto policy has no opt-out.
func New() libprv.Provider {
	return &prv{}
}
