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

package algo

func (v Algorithm) String() string {
	return v.Code()
}

func (v Algorithm) Code() string {
	switch v {
	case Aes:
		return "aes"
	case Aes128:
		return "aes128"
	case Aes192:
		return "aes192"
	case Aes256:
		return "aes256"
	case AgreedKeyAny:
		return "agreedkeyany"
	case CylinkMek:
		return "cylinkmek"
	case Des:
		return "des"
	case Desx:
		return "desx"
	case DhEphem:
		return "dhephem"
	case DhSf:
		return "dhsf"
	case DssSign:
		return "dsssign"
	case Ecdh:
		return "ecdh"
	case Ecdsa:
		return "ecdsa"
	case HashReplaceOwf:
		return "hashreplaceowf"
	case HughesMd5:
		return "hughesmd5"
	case Hmac:
		return "hmac"
	case Mac:
		return "mac"
	case Md2:
		return "md2"
	case Md4:
		return "md4"
	case Md5:
		return "md5"
	case NoSign:
		return "nosign"
	case Rc2:
		return "rc2"
	case Rc4:
		return "rc4"
	case Rc5:
		return "rc5"
	case RsaKeyX:
		return "rsakeyx"
	case RsaSign:
		return "rsasign"
	case Sha1:
		return "sha1"
	case Sha256:
		return "sha256"
	case Sha384:
		return "sha384"
	case Sha512:
		return "sha512"
	case TripleDes:
		return "3des"
	case TripleDes112:
		return "3des112"
	default:
		return ""
	}
}

func (v Algorithm) Algo() uint32 {
	return uint32(v)
}

func (v Algorithm) Uint32() uint32 {
	return v.Algo()
}

func (v Algorithm) Uint() uint {
	return uint(v.Algo())
}

func (v Algorithm) Int() int {
	return int(v.Algo())
}
