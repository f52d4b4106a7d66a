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

// Package algo provides the opaque algorithm tags forwarded to a security
// provider during credential acquisition.
//
// The tags are never interpreted by the stream core: a pinned list is passed
// through verbatim and the provider decides whether it can honor it. The
// numeric values follow the platform algorithm identifier table so that a
// native provider can consume them unchanged.
//
// Example:
//
//	a := algo.Parse("aes-128")
//	if a != algo.Unknown {
//	    fmt.Println("pinned:", a.String())
//	}
package algo

import (
	"math"
	"strings"
)

// Algorithm is one opaque algorithm identifier tag.
type Algorithm uint32

const (
	// Unknown represents an unrecognized algorithm tag.
	Unknown Algorithm = 0

	// Aes is the Advanced Encryption Standard (AES).
	Aes Algorithm = 0x6611
	// Aes128 is 128 bit AES.
	Aes128 Algorithm = 0x660e
	// Aes192 is 192 bit AES.
	Aes192 Algorithm = 0x660f
	// Aes256 is 256 bit AES.
	Aes256 Algorithm = 0x6610
	// AgreedKeyAny is the temporary identifier for handles of
	// Diffie-Hellman agreed keys.
	AgreedKeyAny Algorithm = 0xaa03
	// CylinkMek is the 40-bit DES derivation with parity and zeroed key bits.
	CylinkMek Algorithm = 0x660c
	// Des is the DES encryption algorithm.
	Des Algorithm = 0x6601
	// Desx is the DESX encryption algorithm.
	Desx Algorithm = 0x6604
	// DhEphem is the Diffie-Hellman ephemeral key exchange algorithm.
	DhEphem Algorithm = 0xaa02
	// DhSf is the Diffie-Hellman store and forward key exchange algorithm.
	DhSf Algorithm = 0xaa01
	// DssSign is the DSA public key signature algorithm.
	DssSign Algorithm = 0x2200
	// Ecdh is the elliptic curve Diffie-Hellman key exchange algorithm.
	Ecdh Algorithm = 0xaa05
	// Ecdsa is the elliptic curve digital signature algorithm.
	Ecdsa Algorithm = 0x2203
	// HashReplaceOwf is the one way function hashing algorithm.
	HashReplaceOwf Algorithm = 0x800b
	// HughesMd5 is the Hughes MD5 hashing algorithm.
	HughesMd5 Algorithm = 0xa003
	// Hmac is the HMAC keyed hash algorithm.
	Hmac Algorithm = 0x8009
	// Mac is the MAC keyed hash algorithm.
	Mac Algorithm = 0x8005
	// Md2 is the MD2 hashing algorithm.
	Md2 Algorithm = 0x8001
	// Md4 is the MD4 hashing algorithm.
	Md4 Algorithm = 0x8002
	// Md5 is the MD5 hashing algorithm.
	Md5 Algorithm = 0x8003
	// NoSign is the null signature algorithm.
	NoSign Algorithm = 0x2000
	// Rc2 is the RC2 block encryption algorithm.
	Rc2 Algorithm = 0x6602
	// Rc4 is the RC4 stream encryption algorithm.
	Rc4 Algorithm = 0x6801
	// Rc5 is the RC5 block encryption algorithm.
	Rc5 Algorithm = 0x660d
	// RsaKeyX is the RSA public key exchange algorithm.
	RsaKeyX Algorithm = 0xa400
	// RsaSign is the RSA public key signature algorithm.
	RsaSign Algorithm = 0x2400
	// Sha1 is the SHA hashing algorithm.
	Sha1 Algorithm = 0x8004
	// Sha256 is the 256 bit SHA hashing algorithm.
	Sha256 Algorithm = 0x800c
	// Sha384 is the 384 bit SHA hashing algorithm.
	Sha384 Algorithm = 0x800d
	// Sha512 is the 512 bit SHA hashing algorithm.
	Sha512 Algorithm = 0x800e
	// TripleDes is the triple DES encryption algorithm.
	TripleDes Algorithm = 0x6603
	// TripleDes112 is two-key triple DES with an effective 112 bit key.
	TripleDes112 Algorithm = 0x6609
)

// List returns all the known algorithm tags.
func List() []Algorithm {
	return []Algorithm{
		Aes,
		Aes128,
		Aes192,
		Aes256,
		AgreedKeyAny,
		CylinkMek,
		Des,
		Desx,
		DhEphem,
		DhSf,
		DssSign,
		Ecdh,
		Ecdsa,
		HashReplaceOwf,
		HughesMd5,
		Hmac,
		Mac,
		Md2,
		Md4,
		Md5,
		NoSign,
		Rc2,
		Rc4,
		Rc5,
		RsaKeyX,
		RsaSign,
		Sha1,
		Sha256,
		Sha384,
		Sha512,
		TripleDes,
		TripleDes112,
	}
}

// ListString returns all the known algorithm tags as strings.
func ListString() []string {
	var res = make([]string, 0)
	for _, a := range List() {
		res = append(res, a.String())
	}
	return res
}

// Parse returns an Algorithm from a given string.
//
// The string is cleaned up by removing any double quotes, single quotes,
// dashes, underscores, periods and whitespace, then matched against the
// canonical codes. If no match is found, Unknown is returned.
func Parse(s string) Algorithm {
	s = strings.ToLower(s)
	s = strings.Replace(s, "\"", "", -1) // nolint
	s = strings.Replace(s, "'", "", -1)  // nolint
	s = strings.Replace(s, "-", "", -1)  // nolint
	s = strings.Replace(s, "_", "", -1)  // nolint
	s = strings.Replace(s, ".", "", -1)  // nolint
	s = strings.Replace(s, " ", "", -1)  // nolint
	s = strings.TrimSpace(s)

	switch s {
	case "aes":
		return Aes
	case "aes128":
		return Aes128
	case "aes192":
		return Aes192
	case "aes256":
		return Aes256
	case "agreedkeyany":
		return AgreedKeyAny
	case "cylinkmek":
		return CylinkMek
	case "des":
		return Des
	case "desx":
		return Desx
	case "dhephem":
		return DhEphem
	case "dhsf":
		return DhSf
	case "dsssign":
		return DssSign
	case "ecdh":
		return Ecdh
	case "ecdsa":
		return Ecdsa
	case "hashreplaceowf":
		return HashReplaceOwf
	case "hughesmd5":
		return HughesMd5
	case "hmac":
		return Hmac
	case "mac":
		return Mac
	case "md2":
		return Md2
	case "md4":
		return Md4
	case "md5":
		return Md5
	case "nosign":
		return NoSign
	case "rc2":
		return Rc2
	case "rc4":
		return Rc4
	case "rc5":
		return Rc5
	case "rsakeyx":
		return RsaKeyX
	case "rsasign":
		return RsaSign
	case "sha", "sha1":
		return Sha1
	case "sha256":
		return Sha256
	case "sha384":
		return Sha384
	case "sha512":
		return Sha512
	case "3des", "tripledes":
		return TripleDes
	case "3des112", "tripledes112":
		return TripleDes112
	// not found
	default:
		return Unknown
	}
}

// ParseInt takes an integer and returns the matching Algorithm constant.
//
// Values below 1 are mapped to 0 and values above math.MaxUint32 are clamped
// to math.MaxUint32. If no matching constant is found, the function returns
// Unknown.
func ParseInt(d int) Algorithm {
	var i uint32

	if d > math.MaxUint32 {
		i = math.MaxUint32
	} else if d < 1 {
		i = 0
	} else {
		i = uint32(d)
	}

	for _, a := range List() {
		if uint32(a) == i {
			return a
		}
	}

	return Unknown
}

// ParseBytes takes a byte slice and returns the matching Algorithm constant.
func ParseBytes(p []byte) Algorithm {
	return Parse(string(p))
}

// Check returns whether the given raw value is a known algorithm tag.
func Check(alg uint32) bool {
	if a := ParseInt(int(alg)); a == Unknown {
		return false
	}
	return true
}
