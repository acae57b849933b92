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
	"strconv"
	"unsafe"
)

// Integer is satisfied by every Go integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntKind describes an integer representation by signedness and width.
type IntKind struct {
	Signed bool
	Bits   int
}

var (
	Int8   = IntKind{Signed: true, Bits: 8}
	Int16  = IntKind{Signed: true, Bits: 16}
	Int32  = IntKind{Signed: true, Bits: 32}
	Int64  = IntKind{Signed: true, Bits: 64}
	Uint8  = IntKind{Bits: 8}
	Uint16 = IntKind{Bits: 16}
	Uint32 = IntKind{Bits: 32}
	Uint64 = IntKind{Bits: 64}
)

// PtrKind returns the kind of int (signed) or uint on a target whose
// pointers are ptrBits wide.
func PtrKind(signed bool, ptrBits int) IntKind {
	return IntKind{Signed: signed, Bits: ptrBits}
}

// KindOf returns the kind of T as laid out on the current target.
func KindOf[T Integer]() IntKind {
	var zero T
	return IntKind{
		Signed: ^zero < 0,
		Bits:   int(unsafe.Sizeof(zero)) * 8,
	}
}

// MaxUint returns the largest value of an unsigned kind of the same width.
func (k IntKind) MaxUint() uint64 {
	return ^uint64(0) >> (64 - k.Bits)
}

// Max returns the largest value representable by k, as a uint64.
func (k IntKind) Max() uint64 {
	if k.Signed {
		return k.MaxUint() >> 1
	}
	return k.MaxUint()
}

// Min returns the smallest value representable by k.
func (k IntKind) Min() int64 {
	if k.Signed {
		return -int64(k.Max()) - 1
	}
	return 0
}

func (k IntKind) String() string {
	if k.Signed {
		return "int" + strconv.Itoa(k.Bits)
	}
	return "uint" + strconv.Itoa(k.Bits)
}
