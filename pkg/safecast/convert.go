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
	"fmt"
)

// Convert returns v as a To if its value is representable there, and
// ErrOverflow or ErrUnderflow otherwise.
//
// The policy is selected from the signedness and width of the type
// parameters, which are fixed per instantiation. Destination bounds are
// always converted into From before comparing; the guards make sure that
// only happens when From can hold them.
func Convert[To, From Integer](v From) (To, error) {
	from, to := KindOf[From](), KindOf[To]()
	switch {
	case !from.Signed && !to.Signed:
		if from.Bits > to.Bits && v > From(maxOf[To]()) {
			return 0, ErrOverflow
		}
	case from.Signed && !to.Signed:
		if v < 0 {
			return 0, ErrUnderflow
		}
		if from.Bits > to.Bits && v > From(maxOf[To]()) {
			return 0, ErrOverflow
		}
	case !from.Signed && to.Signed:
		if from.Bits >= to.Bits && v > From(maxOf[To]()) {
			return 0, ErrOverflow
		}
	default:
		if from.Bits > to.Bits {
			if v > From(maxOf[To]()) {
				return 0, ErrOverflow
			} else if v < From(minOf[To]()) {
				return 0, ErrUnderflow
			}
		}
	}
	return To(v), nil
}

// MustConvert is Convert for callers that have already established the
// range. It panics if v does not fit.
func MustConvert[To, From Integer](v From) To {
	r, err := Convert[To](v)
	if err != nil {
		panic(fmt.Sprintf("safecast: %v converting %v (%T) to %T", err, v, v, r))
	}
	return r
}

// Must unwraps the result of a pair function such as Uint64ToUint32,
// panicking on error.
func Must[T Integer](v T, err error) T {
	if err != nil {
		panic("safecast: " + err.Error())
	}
	return v
}

func maxOf[T Integer]() T {
	k := KindOf[T]()
	if k.Signed {
		return T(1)<<(k.Bits-1) - 1
	}
	return ^T(0)
}

func minOf[T Integer]() T {
	if KindOf[T]().Signed {
		return -maxOf[T]() - 1
	}
	return 0
}
