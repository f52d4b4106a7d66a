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

package provider

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

// Class is the behavior of a provider Status as seen by the stream core.
// Exact numeric status constants are provider-defined; the core dispatches
// on the class only and treats ClassFailure (or any unknown class) as fatal.
type Class uint8

const (
	// ClassOK : the step succeeded, no further provider call is needed.
	ClassOK Class = iota
	// ClassContinueNeeded : the handshake is in progress, call again.
	ClassContinueNeeded
	// ClassIncompleteMessage : more input bytes are required before the
	// provider can proceed.
	ClassIncompleteMessage
	// ClassContextExpired : the peer closed the session cleanly.
	ClassContextExpired
	// ClassRenegotiate : the peer requested a new handshake.
	ClassRenegotiate
	// ClassFailure : any other provider condition, fatal for the session.
	ClassFailure
)

// FuncMessage lazily retrieves the platform-formatted message for a status
// code. It is only invoked when an error is actually surfaced.
type FuncMessage func() string

// Status is one provider return value: a behavior class, the raw provider
// numeric code, and an optional formatted message retriever.
type Status struct {
	c Class
	n uint32
	m FuncMessage
}

// NewStatus builds a Status. msg may be nil when the provider has no
// formatted message for the code.
func NewStatus(cls Class, code uint32, msg FuncMessage) Status {
	return Status{
		c: cls,
		n: code,
		m: msg,
	}
}

// StatusOK is the zero-code success status.
func StatusOK() Status {
	return Status{
		c: ClassOK,
	}
}

// Class returns the behavior class of the status.
func (s Status) Class() Class {
	return s.c
}

// Code returns the raw provider numeric status code.
func (s Status) Code() uint32 {
	return s.n
}

// Message returns the platform-formatted message for the code, or an empty
// string when none is retrievable.
func (s Status) Message() string {
	if s.m == nil {
		return ""
	}

	return s.m()
}

// IsOK reports whether the status class is ClassOK.
func (s Status) IsOK() bool {
	return s.c == ClassOK
}

// Err converts a non-success status into a provider error carrying the
// numeric code and, when retrievable, the formatted message. It returns nil
// for ClassOK.
func (s Status) Err() liberr.Error {
	if s.c == ClassOK {
		return nil
	}

	if m := s.Message(); m != "" {
		//nolint goerr113
		return ErrorProviderStatus.Error(fmt.Errorf("status 0x%08x: %s", s.n, m))
	}

	//nolint goerr113
	return ErrorProviderStatus.Error(fmt.Errorf("status 0x%08x", s.n))
}
