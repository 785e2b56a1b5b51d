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

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength is the cause of an InvalidArgumentError raised for a
	// negative length or bit length.
	ErrNegativeLength = errors.New("length must not be negative")

	// ErrTruncatedBitString is the cause of an InvalidArgumentError raised
	// when the bit string data holds fewer bytes than its bit length needs.
	ErrTruncatedBitString = errors.New("data is shorter than the bit length")
)

// InvalidArgumentError is used when an argument to an encoding function is
// out of range. No output is produced when it is returned.
type InvalidArgumentError struct {
	Param string
	Err   error
}

// Error returns the error message.
func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("der: %q param is invalid: %s", e.Param, e.Err.Error())
	}
	return fmt.Sprintf("der: %q param is invalid", e.Param)
}

// Unwrap returns the cause of the error.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func negativeLengthError(param string, length int) error {
	return &InvalidArgumentError{
		Param: param,
		Err:   fmt.Errorf("%w: %d", ErrNegativeLength, length),
	}
}
