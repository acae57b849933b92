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

package safecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/safecast/pkg/safecast"
)

func TestConvert(t *testing.T) {
	u8, err := safecast.Convert[uint8](uint16(0xff))
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xff), u8)
	_, err = safecast.Convert[uint8](uint16(0x100))
	assert.Equal(t, safecast.ErrOverflow, err)

	u8, err = safecast.Convert[uint8](int16(0))
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), u8)
	_, err = safecast.Convert[uint8](int16(-1))
	assert.Equal(t, safecast.ErrUnderflow, err)
	_, err = safecast.Convert[uint8](int16(256))
	assert.Equal(t, safecast.ErrOverflow, err)

	i8, err := safecast.Convert[int8](uint8(0x7f))
	assert.NoError(t, err)
	assert.Equal(t, int8(127), i8)
	_, err = safecast.Convert[int8](uint8(0x80))
	assert.Equal(t, safecast.ErrOverflow, err)

	i8, err = safecast.Convert[int8](int16(127))
	assert.NoError(t, err)
	assert.Equal(t, int8(127), i8)
	_, err = safecast.Convert[int8](int16(128))
	assert.Equal(t, safecast.ErrOverflow, err)
	i8, err = safecast.Convert[int8](int16(-128))
	assert.NoError(t, err)
	assert.Equal(t, int8(-128), i8)
	_, err = safecast.Convert[int8](int16(-129))
	assert.Equal(t, safecast.ErrUnderflow, err)

	// equal width signed never fails, unsigned into signed does
	i64, err := safecast.Convert[int64](int64(math.MinInt64))
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64)
	_, err = safecast.Convert[int64](uint64(math.MaxUint64))
	assert.Equal(t, safecast.ErrOverflow, err)
	_, err = safecast.Convert[uint64](int64(-1))
	assert.Equal(t, safecast.ErrUnderflow, err)
	u64, err := safecast.Convert[uint64](int64(math.MaxInt64))
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), u64)
}

type port uint16

func TestConvertNamedTypes(t *testing.T) {
	p, err := safecast.Convert[port](int32(8080))
	assert.NoError(t, err)
	assert.Equal(t, port(8080), p)

	_, err = safecast.Convert[port](int32(70000))
	assert.Equal(t, safecast.ErrOverflow, err)

	n, err := safecast.Convert[int8](port(12))
	assert.NoError(t, err)
	assert.Equal(t, int8(12), n)

	ptr, err := safecast.Convert[uintptr](int64(-3))
	assert.Equal(t, safecast.ErrUnderflow, err)
	assert.Zero(t, ptr)
}

func TestConvertPointerWidth(t *testing.T) {
	switch safecast.KindOf[int]().Bits {
	case 32:
		u32, err := safecast.Convert[uint32](uint(math.MaxUint))
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), u32)
		_, err = safecast.Convert[uint](uint64(math.MaxUint64))
		assert.Equal(t, safecast.ErrOverflow, err)
		_, err = safecast.Convert[int](int64(math.MaxInt64))
		assert.Equal(t, safecast.ErrOverflow, err)
	case 64:
		_, err := safecast.Convert[uint32](uint(math.MaxUint))
		assert.Equal(t, safecast.ErrOverflow, err)
		u, err := safecast.Convert[uint](uint64(math.MaxUint64))
		assert.NoError(t, err)
		assert.Equal(t, uint(math.MaxUint), u)
		i, err := safecast.Convert[int](int64(math.MaxInt64))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, i)
	default:
		t.Fatalf("unexpected int width %d", safecast.KindOf[int]().Bits)
	}
}

// verifyConvert checks Convert[To] against the mathematical outcome for
// each of values, which must be ascending. Besides exactness it checks
// that successful conversions round-trip and that failures are monotonic.
func verifyConvert[To, From safecast.Integer](t *testing.T, values []From) {
	t.Helper()
	to := safecast.KindOf[To]()
	overflowed, pastUnderflow := false, false
	for _, v := range values {
		got, err := safecast.Convert[To](v)
		want := expected(bigOf(v), to)
		if err != want {
			t.Fatalf("Convert to %v of %v (%T): got error %v, want %v", to, v, v, err, want)
		}

		if err == nil {
			if bigOf(got).Cmp(bigOf(v)) != 0 {
				t.Fatalf("Convert to %v of %v (%T) changed the value to %v", to, v, v, got)
			}
			back, err := safecast.Convert[From](got)
			if err != nil || back != v {
				t.Fatalf("round trip of %v (%T) through %v gave %v, %v", v, v, to, back, err)
			}
		} else if got != 0 {
			t.Fatalf("Convert to %v of %v (%T) failed with non-zero result %v", to, v, v, got)
		}

		if err == safecast.ErrOverflow {
			overflowed = true
		} else if overflowed {
			t.Fatalf("Convert to %v of %v (%T) did not overflow after a smaller value did", to, v, v)
		}
		if err == safecast.ErrUnderflow && pastUnderflow {
			t.Fatalf("Convert to %v of %v (%T) underflowed after a smaller value did not", to, v, v)
		}
		if err != safecast.ErrUnderflow {
			pastUnderflow = true
		}
	}
}

func verifyAllDestinations[From safecast.Integer](t *testing.T, values []From) {
	t.Helper()
	verifyConvert[int, From](t, values)
	verifyConvert[int8, From](t, values)
	verifyConvert[int16, From](t, values)
	verifyConvert[int32, From](t, values)
	verifyConvert[int64, From](t, values)
	verifyConvert[uint, From](t, values)
	verifyConvert[uint8, From](t, values)
	verifyConvert[uint16, From](t, values)
	verifyConvert[uint32, From](t, values)
	verifyConvert[uint64, From](t, values)
	verifyConvert[uintptr, From](t, values)
}

func TestConvertExhaustive(t *testing.T) {
	verifyAllDestinations(t, every[int8]())
	verifyAllDestinations(t, every[uint8]())
	verifyAllDestinations(t, every[int16]())
	verifyAllDestinations(t, every[uint16]())
}

func TestConvertBoundaries(t *testing.T) {
	verifyAllDestinations(t, samples[int]())
	verifyAllDestinations(t, samples[int32]())
	verifyAllDestinations(t, samples[int64]())
	verifyAllDestinations(t, samples[uint]())
	verifyAllDestinations(t, samples[uint32]())
	verifyAllDestinations(t, samples[uint64]())
	verifyAllDestinations(t, samples[uintptr]())
}

func TestMustConvert(t *testing.T) {
	assert.Equal(t, uint32(7), safecast.MustConvert[uint32](int64(7)))
	assert.PanicsWithValue(t, "safecast: integer underflow converting -7 (int64) to uint32", func() {
		safecast.MustConvert[uint32](int64(-7))
	})
}

func TestMust(t *testing.T) {
	assert.Equal(t, uint8(200), safecast.Must(safecast.Uint64ToUint8(200)))
	assert.PanicsWithValue(t, "safecast: integer overflow", func() {
		safecast.Must(safecast.Uint64ToUint8(300))
	})
}

func TestConvertDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		safecast.Convert[int8](int64(-1000))
		safecast.Convert[uint16](int32(70000))
	})
	assert.Zero(t, allocs)
}
