// Copyright © 2026 NVIDIA Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package safecast

import (
	"errors"
)

// ErrorKind tells which bound of the destination kind a value violated.
type ErrorKind uint8

const (
	// Overflow means the value is above the destination maximum.
	Overflow ErrorKind = iota + 1
	// Underflow means the value is below the destination minimum.
	Underflow
)

func (k ErrorKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	}
	return "unknown"
}

// ConversionError is returned when a value is not representable in the
// destination integer kind. It is a small comparable value, so the
// sentinels below can be returned and matched without allocating.
type ConversionError struct {
	kind ErrorKind
}

var (
	// ErrOverflow is returned for values above the destination maximum.
	ErrOverflow error = ConversionError{kind: Overflow}
	// ErrUnderflow is returned for values below the destination minimum.
	ErrUnderflow error = ConversionError{kind: Underflow}
)

func (e ConversionError) Kind() ErrorKind {
	return e.kind
}

func (e ConversionError) Error() string {
	return "integer " + e.kind.String()
}

// ErrorKindOf reports the bound violated by err, looking through wrapped
// errors. The second result is false if err is not a conversion failure.
func ErrorKindOf(err error) (ErrorKind, bool) {
	var cerr ConversionError
	if errors.As(err, &cerr) {
		return cerr.kind, true
	}
	return 0, false
}
