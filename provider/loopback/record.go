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

import "encoding/binary"

// record types, one per wire frame kind
const (
	rtAlert  byte = 0x15
	rtToken  byte = 0x16
	rtData   byte = 0x17
	rtReneg  byte = 0x18
	rtExpire byte = 0x19
	rtClose  byte = 0x1a
)

const (
	headerSize  = 5
	trailerSize = 3
	maxMessage  = 1024
	xorMask     = 0x5a
)

var trailerMagic = []byte{0xc0, 0xff, 0xee}

// putHeader writes the record type and body length into dst[:headerSize].
func putHeader(dst []byte, rt byte, n int) {
	dst[0] = rt
	binary.BigEndian.PutUint32(dst[1:headerSize], uint32(n))
}

// record frames a raw (non data) payload.
func record(rt byte, payload []byte) []byte {
	b := make([]byte, headerSize+len(payload))
	putHeader(b, rt, len(payload))
	copy(b[headerSize:], payload)

	return b
}

// parseRecord returns the leading record of b, or ok=false when more bytes
// are needed. body aliases b; total is the framed byte count.
func parseRecord(b []byte) (rt byte, body []byte, total int, ok bool) {
	if len(b) < headerSize {
		return 0, nil, 0, false
	}

	n := int(binary.BigEndian.Uint32(b[1:headerSize]))

	if len(b) < headerSize+n {
		return 0, nil, 0, false
	}

	return b[0], b[headerSize : headerSize+n], headerSize + n, true
}

// mask obfuscates or restores a data payload in place.
func mask(p []byte) {
	for i := range p {
		p[i] ^= xorMask
	}
}
