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
	"math/big"
	"sort"

	"github.com/NVIDIA/safecast/pkg/safecast"
)

func bigOf[T safecast.Integer](v T) *big.Int {
	if safecast.KindOf[T]().Signed {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func fromBig[T safecast.Integer](b *big.Int) T {
	if safecast.KindOf[T]().Signed {
		return T(b.Int64())
	}
	return T(b.Uint64())
}

func inRange(b *big.Int, k safecast.IntKind) bool {
	return b.Cmp(big.NewInt(k.Min())) >= 0 && b.Cmp(new(big.Int).SetUint64(k.Max())) <= 0
}

// expected is the mathematical outcome of converting b into kind to.
func expected(b *big.Int, to safecast.IntKind) error {
	if b.Cmp(new(big.Int).SetUint64(to.Max())) > 0 {
		return safecast.ErrOverflow
	}
	if b.Cmp(big.NewInt(to.Min())) < 0 {
		return safecast.ErrUnderflow
	}
	return nil
}

var allKinds = []safecast.IntKind{
	safecast.Int8, safecast.Int16, safecast.Int32, safecast.Int64,
	safecast.Uint8, safecast.Uint16, safecast.Uint32, safecast.Uint64,
}

// kindSamples returns, in ascending order, every value of kind k within
// two of a bound of some integer kind, plus zero.
func kindSamples(k safecast.IntKind) []*big.Int {
	seen := make(map[string]bool)
	var points []*big.Int
	add := func(b *big.Int) {
		for d := int64(-2); d <= 2; d++ {
			p := new(big.Int).Add(b, big.NewInt(d))
			if inRange(p, k) && !seen[p.String()] {
				seen[p.String()] = true
				points = append(points, p)
			}
		}
	}
	add(big.NewInt(0))
	for _, bound := range allKinds {
		add(new(big.Int).SetUint64(bound.Max()))
		add(big.NewInt(bound.Min()))
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Cmp(points[j]) < 0 })
	return points
}

func samples[T safecast.Integer]() []T {
	points := kindSamples(safecast.KindOf[T]())
	out := make([]T, len(points))
	for i, p := range points {
		out[i] = fromBig[T](p)
	}
	return out
}

// every returns all values of an 8 or 16 bit type in ascending order.
func every[T safecast.Integer]() []T {
	k := safecast.KindOf[T]()
	if k.Bits > 16 {
		panic("every: type too wide")
	}
	var out []T
	for i := k.Min(); i <= int64(k.Max()); i++ {
		out = append(out, T(i))
	}
	return out
}
