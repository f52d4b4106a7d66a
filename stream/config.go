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

package stream

import (
	"fmt"
	"io"

	libval "github.com/go-playground/validator/v10"
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
	libalg "github.com/nabbar/secstream/algo"
	libcrd "github.com/nabbar/secstream/credential"
	libprv "github.com/nabbar/secstream/provider"
)

// Config is the declarative surface of a secured stream, loadable from
// JSON, YAML, TOML or viper with the algo decoder hook.
type Config struct {
	// Domain is the expected peer name, used for name indication and
	// identity checking. Empty disables identity binding.
	Domain string `mapstructure:"domain" json:"domain" yaml:"domain" toml:"domain" validate:"omitempty,hostname_rfc1123"`

	// Algorithms is the optional pinned algorithm list, forwarded verbatim
	// to the provider. Empty means provider defaults.
	Algorithms []libalg.Algorithm `mapstructure:"algorithms" json:"algorithms" yaml:"algorithms" toml:"algorithms" validate:"omitempty,dive,gt=0"`

	// Inbound acquires a server-side credential instead of a client one.
	Inbound bool `mapstructure:"inbound" json:"inbound" yaml:"inbound" toml:"inbound"`
}

func (c *Config) Validate() liberr.Error {
	err := ErrorValidatorError.Error(nil)

	if er := libval.New().Struct(c); er != nil {
		if e, ok := er.(*libval.InvalidValidationError); ok {
			err.Add(e)
		}

		for _, e := range er.(libval.ValidationErrors) {
			//nolint goerr113
			err.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", e.StructNamespace(), e.ActualTag()))
		}
	}

	if err.HasParent() {
		return err
	}

	return nil
}

// Direction returns the credential direction selected by the config.
func (c *Config) Direction() libprv.Direction {
	if c.Inbound {
		return libprv.DirectionInbound
	}

	return libprv.DirectionOutbound
}

// New acquires a credential from the provider per the config, then runs the
// handshake over the given transport. The returned stream owns the
// credential.
func (c *Config) New(prv libprv.Provider, transport io.ReadWriter, fct liblog.FuncLog) (Stream, liberr.Error) {
	if e := c.Validate(); e != nil {
		return nil, e
	}

	crd, e := libcrd.New(prv, c.Direction(), c.Algorithms...)

	if e != nil {
		return nil, e
	}

	s, err := New().Domain(c.Domain).Logger(fct).Initialize(crd, transport)

	if err != nil {
		_ = crd.Close()

		if er, k := err.(liberr.Error); k {
			return nil, er
		}

		return nil, ErrorInitialize.Error(err)
	}

	return s, nil
}
