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

// Policy is the range test a conversion between two kinds needs.
type Policy uint8

const (
	// Infallible conversions accept every source value.
	Infallible Policy = iota
	UnsignedFromUnsigned
	UnsignedFromSigned
	SignedFromUnsigned
	SignedFromSigned
)

func (p Policy) String() string {
	switch p {
	case Infallible:
		return "infallible"
	case UnsignedFromUnsigned:
		return "unsigned-from-unsigned"
	case UnsignedFromSigned:
		return "unsigned-from-signed"
	case SignedFromUnsigned:
		return "signed-from-unsigned"
	case SignedFromSigned:
		return "signed-from-signed"
	}
	return "unknown"
}

// PolicyFor selects the policy for converting from one kind to another.
// Same-signedness conversions into an equal or wider kind and unsigned
// sources into a strictly wider signed kind are infallible. An unsigned
// source into an equal-width signed kind is not: the destination sign bit
// is magnitude in the source.
func PolicyFor(from, to IntKind) Policy {
	switch {
	case from.Signed == to.Signed && to.Bits >= from.Bits:
		return Infallible
	case !from.Signed && to.Signed && to.Bits > from.Bits:
		return Infallible
	case !from.Signed && !to.Signed:
		return UnsignedFromUnsigned
	case from.Signed && !to.Signed:
		return UnsignedFromSigned
	case !from.Signed:
		return SignedFromUnsigned
	default:
		return SignedFromSigned
	}
}

// Value carries a source integer of up to 64 bits. Signed values are held
// sign-extended, so int64(v) recovers them.
type Value uint64

// ValueOf widens v into a Value.
func ValueOf[T Integer](v T) Value {
	return Value(v)
}

// Check decides the outcome of converting v, a value of kind from, into
// kind to. It is the same decision the generated pair functions and
// Convert make, with kinds known only at run time, and it lets tooling
// evaluate a conversion for a pointer width other than the host's.
func Check(from, to IntKind, v Value) error {
	switch PolicyFor(from, to) {
	case UnsignedFromUnsigned:
		if from.Bits > to.Bits && uint64(v) > to.Max() {
			return ErrOverflow
		}
	case UnsignedFromSigned:
		if int64(v) < 0 {
			return ErrUnderflow
		}
		// to is narrower than from, so its maximum fits the signed domain.
		if from.Bits > to.Bits && int64(v) > int64(to.Max()) {
			return ErrOverflow
		}
	case SignedFromUnsigned:
		if from.Bits >= to.Bits && uint64(v) > to.Max() {
			return ErrOverflow
		}
	case SignedFromSigned:
		if from.Bits > to.Bits {
			if int64(v) > int64(to.Max()) {
				return ErrOverflow
			} else if int64(v) < to.Min() {
				return ErrUnderflow
			}
		}
	}
	return nil
}
