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

// Package der encodes ASN.1 primitive values in DER.
// Note:
//   - Only the length and content octets are produced. The identifier
//     octets are written by the caller.
//   - Every function returns a newly allocated buffer and never modifies
//     its input, so all functions are safe for concurrent use.
//
// Reference:
// - http://luca.ntop.org/Teaching/Appunti/asn1.html
// - ISO/IEC 8825-1:2021
package der

import "fmt"

// EncodeLength returns the DER length octets of length.
//
// Reference: ISO/IEC 8825-1: 8.1.3, 10.1
func EncodeLength(length int) ([]byte, error) {
	if length < 0 {
		return nil, negativeLengthError("length", length)
	}
	return AppendLength(make([]byte, 0, EncodedLengthSize(length)), length)
}

// EncodeOctetString returns the length and content octets of an OCTET
// STRING holding data. An empty data encodes as a single zero length octet.
//
// Reference: ISO/IEC 8825-1: 8.7
func EncodeOctetString(data []byte) []byte {
	size := EncodedLengthSize(len(data)) + len(data)
	return AppendOctetString(make([]byte, 0, size), data)
}

// EncodeBitString returns the length and content octets of a BIT STRING
// holding the first bitLength bits of data. The content octets start with
// the number of unused bits in the final octet, and those unused bits are
// cleared in the output.
//
// Reference: ISO/IEC 8825-1: 8.6, 11.2
func EncodeBitString(data []byte, bitLength int) ([]byte, error) {
	byteCount, err := bitStringByteCount(data, bitLength)
	if err != nil {
		return nil, err
	}
	size := EncodedLengthSize(byteCount+1) + byteCount + 1
	return AppendBitString(make([]byte, 0, size), data, bitLength)
}

// bitStringByteCount validates a bit string and returns the number of data
// octets it occupies.
func bitStringByteCount(data []byte, bitLength int) (int, error) {
	if bitLength < 0 {
		return 0, negativeLengthError("bitLength", bitLength)
	}
	byteCount := bitLength / 8
	if bitLength%8 != 0 {
		byteCount++
	}
	if len(data) < byteCount {
		return 0, &InvalidArgumentError{
			Param: "data",
			Err:   fmt.Errorf("%w: %d bits need %d bytes, got %d", ErrTruncatedBitString, bitLength, byteCount, len(data)),
		}
	}
	return byteCount, nil
}

// writeOctetString writes the length and content octets of an OCTET STRING.
func writeOctetString(w Writer, data []byte) error {
	if err := writeLength(w, len(data)); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// writeBitString writes the length and content octets of a BIT STRING
// occupying byteCount octets of data.
func writeBitString(w Writer, data []byte, bitLength, byteCount int) error {
	// content octets
	// +----------------+----------------+----------------+
	// | unused bits    | data[0:n-1]    | data[n-1]&mask |
	// +----------------+----------------+----------------+
	unused := byteCount*8 - bitLength
	if err := writeLength(w, byteCount+1); err != nil {
		return err
	}
	if err := w.WriteByte(byte(unused)); err != nil {
		return err
	}
	if byteCount == 0 {
		return nil
	}
	if _, err := w.Write(data[:byteCount-1]); err != nil {
		return err
	}
	// DER restriction: unused bits must be zero
	// Reference: ISO/IEC 8825-1: 11.2.1
	return w.WriteByte(data[byteCount-1] & (0xff << unused))
}
