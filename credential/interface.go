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

// Package credential owns a provider credential handle for one direction of
// a session, with an optional pinned algorithm list.
//
// A non-empty algorithm list is passed to the provider verbatim; a provider
// reported mismatch is surfaced as an error at acquisition time, before any
// context or transport exists. Strong-crypto policy is always requested,
// there is no opt-out at this layer.
package credential

import (
	"io"

	liberr "github.com/nabbar/golib/errors"
	libalg "github.com/nabbar/secstream/algo"
	libprv "github.com/nabbar/secstream/provider"
)

// Credential owns a provider credential handle. Close releases the provider
// resource; the credential must not be used afterwards.
type Credential interface {
	io.Closer

	// Provider returns the security package this credential was acquired
	// from.
	Provider() libprv.Provider

	// Handle returns the opaque provider credential handle.
	Handle() libprv.Credential

	// Direction returns the direction the credential was acquired for.
	Direction() libprv.Direction

	// Algorithms returns the pinned algorithm list, or nil when the provider
	// defaults apply.
	Algorithms() []libalg.Algorithm
}

// New acquires a credential from the given provider. When algs is non-empty
// it is pinned verbatim; otherwise the provider defaults apply.
func New(prv libprv.Provider, dir libprv.Direction, algs ...libalg.Algorithm) (Credential, liberr.Error) {
	if prv == nil {
		return nil, ErrorParamsEmpty.Error(nil)
	}

	var lst []libalg.Algorithm

	if len(algs) > 0 {
		lst = make([]libalg.Algorithm, len(algs))
		copy(lst, algs)
	}

	hdl, sts := prv.AcquireCredential(dir, lst)

	if !sts.IsOK() {
		return nil, ErrorAcquire.Error(sts.Err())
	} else if hdl == nil {
		return nil, ErrorAcquire.Error(nil)
	}

	return &crd{
		p: prv,
		h: hdl,
		d: dir,
		a: lst,
	}, nil
}
