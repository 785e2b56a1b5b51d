// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package der

import "io"

// maxShortFormLength is the largest length encoded in a single octet.
const maxShortFormLength = 0x7f

// Writer is the interface that wraps the basic Write and WriteByte methods.
type Writer interface {
	io.Writer
	io.ByteWriter
}

// WriteLength writes the DER length octets of length to w.
// Errors returned by w are passed through unchanged.
//
// Reference: ISO/IEC 8825-1: 10.1
func WriteLength(w io.ByteWriter, length int) error {
	if length < 0 {
		return negativeLengthError("length", length)
	}
	return writeLength(w, length)
}

// writeLength encodes a non-negative length.
func writeLength(w io.ByteWriter, length int) error {
	// DER restriction: short form must be used for length less than 128
	if length <= maxShortFormLength {
		return w.WriteByte(byte(length))
	}

	// DER restriction: long form must be encoded in the minimum number of octets
	lengthSize := EncodedLengthSize(length)
	err := w.WriteByte(0x80 | byte(lengthSize-1))
	if err != nil {
		return err
	}
	for i := lengthSize - 1; i > 0; i-- {
		if err = w.WriteByte(byte(length >> (8 * (i - 1)))); err != nil {
			return err
		}
	}
	return nil
}

// EncodedLengthSize gives the number of octets used for encoding the length
// in DER. It returns 0 for a negative length.
//
// Reference: ISO/IEC 8825-1: 10.1
func EncodedLengthSize(length int) int {
	if length < 0 {
		return 0
	}
	if length <= maxShortFormLength {
		return 1
	}

	lengthSize := 1
	for ; length > 0; lengthSize++ {
		length >>= 8
	}
	return lengthSize
}
