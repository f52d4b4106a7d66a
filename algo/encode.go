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

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (v *Algorithm) unmarshall(val []byte) error {
	*v = ParseBytes(val)
	return nil
}

func (v Algorithm) MarshalJSON() ([]byte, error) {
	t := v.String()
	b := make([]byte, 0, len(t)+2)
	b = append(b, '"')
	b = append(b, []byte(t)...)
	b = append(b, '"')
	return b, nil
}

func (v *Algorithm) UnmarshalJSON(bytes []byte) error {
	return v.unmarshall(bytes)
}

func (v Algorithm) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v *Algorithm) UnmarshalYAML(value *yaml.Node) error {
	return v.unmarshall([]byte(value.Value))
}

func (v Algorithm) MarshalTOML() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Algorithm) UnmarshalTOML(i interface{}) error {
	if p, k := i.([]byte); k {
		return v.unmarshall(p)
	}
	if p, k := i.(string); k {
		return v.unmarshall([]byte(p))
	}
	return fmt.Errorf("algo: value not in valid format")
}

func (v Algorithm) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Algorithm) UnmarshalText(bytes []byte) error {
	return v.unmarshall(bytes)
}

func (v Algorithm) MarshalCBOR() ([]byte, error) {
	t := v.String()
	b := make([]byte, 0, len(t)+1)

	// major type 3 (text string) with inline length, tags stay short
	b = append(b, 0x60|byte(len(t)))
	b = append(b, []byte(t)...)

	return b, nil
}

func (v *Algorithm) UnmarshalCBOR(bytes []byte) error {
	if len(bytes) > 0 && bytes[0]&0xe0 == 0x60 {
		bytes = bytes[1:]
	}

	return v.unmarshall(bytes)
}
