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

import "bytes"

// AppendLength appends the DER length octets of length to dst and returns
// the extended buffer. On error, dst is returned unchanged.
func AppendLength(dst []byte, length int) ([]byte, error) {
	if length < 0 {
		return dst, negativeLengthError("length", length)
	}
	buf := bytes.NewBuffer(dst)
	if err := writeLength(buf, length); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}

// AppendOctetString appends the length and content octets of an OCTET
// STRING holding data to dst and returns the extended buffer.
func AppendOctetString(dst []byte, data []byte) []byte {
	buf := bytes.NewBuffer(dst)
	// writes to a bytes.Buffer only fail by panicking
	_ = writeOctetString(buf, data)
	return buf.Bytes()
}

// AppendBitString appends the length and content octets of a BIT STRING
// holding the first bitLength bits of data to dst and returns the extended
// buffer. On error, dst is returned unchanged.
func AppendBitString(dst []byte, data []byte, bitLength int) ([]byte, error) {
	byteCount, err := bitStringByteCount(data, bitLength)
	if err != nil {
		return dst, err
	}
	buf := bytes.NewBuffer(dst)
	if err := writeBitString(buf, data, bitLength, byteCount); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}
