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

package gen

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/NVIDIA/safecast/pkg/safecast"
)

// PointerWidths are the pointer sizes int and uint may resolve to.
var PointerWidths = []int{32, 64}

// Type is a Go integer type in the pair table. Bits is zero for the
// pointer-sized types.
type Type struct {
	Name   string
	Signed bool
	Bits   int
}

var Types = []Type{
	{"int", true, 0},
	{"int8", true, 8},
	{"int16", true, 16},
	{"int32", true, 32},
	{"int64", true, 64},
	{"uint", false, 0},
	{"uint8", false, 8},
	{"uint16", false, 16},
	{"uint32", false, 32},
	{"uint64", false, 64},
}

// Lookup finds a type of the table by its Go name.
func Lookup(name string) (Type, error) {
	for _, t := range Types {
		if t.Name == name {
			return t, nil
		}
	}
	return Type{}, errors.Errorf("unknown integer type %q", name)
}

func (t Type) PointerSized() bool {
	return t.Bits == 0
}

// Kind resolves t for a target with ptrBits wide pointers.
func (t Type) Kind(ptrBits int) safecast.IntKind {
	if t.PointerSized() {
		return safecast.PtrKind(t.Signed, ptrBits)
	}
	return safecast.IntKind{Signed: t.Signed, Bits: t.Bits}
}

// Title is the name used in function identifiers, e.g. Uint16.
func (t Type) Title() string {
	return strings.ToUpper(t.Name[:1]) + t.Name[1:]
}

type Pair struct {
	From Type
	To   Type
}

// Pairs returns every ordered pair of distinct table types.
func Pairs() []Pair {
	var pairs []Pair
	for _, from := range Types {
		for _, to := range Types {
			if from != to {
				pairs = append(pairs, Pair{from, to})
			}
		}
	}
	return pairs
}

func (p Pair) FuncName() string {
	return p.From.Title() + "To" + p.To.Title()
}

func (p Pair) PointerSized() bool {
	return p.From.PointerSized() || p.To.PointerSized()
}

// Policy resolves the pair for a pointer width.
func (p Pair) Policy(ptrBits int) safecast.Policy {
	return safecast.PolicyFor(p.From.Kind(ptrBits), p.To.Kind(ptrBits))
}

// Fallible reports whether the conversion can fail for some pointer width.
// Such pairs return an error on every target so that callers compile
// everywhere.
func (p Pair) Fallible() bool {
	for _, w := range PointerWidths {
		if p.Policy(w) != safecast.Infallible {
			return true
		}
	}
	return false
}

// Check is one range test of a generated conversion.
type Check struct {
	Cond string
	Err  string
}

// Checks lists the range tests of the pair for a pointer width, in the
// order they must run. Bounds are written as math constants of the
// destination, which the compiler converts into the source type.
func (p Pair) Checks(ptrBits int) []Check {
	from, to := p.From.Kind(ptrBits), p.To.Kind(ptrBits)
	overflow := Check{"v > " + maxConst(to), "ErrOverflow"}
	switch p.Policy(ptrBits) {
	case safecast.UnsignedFromUnsigned:
		return []Check{overflow}
	case safecast.UnsignedFromSigned:
		checks := []Check{{"v < 0", "ErrUnderflow"}}
		if from.Bits > to.Bits {
			checks = append(checks, overflow)
		}
		return checks
	case safecast.SignedFromUnsigned:
		return []Check{overflow}
	case safecast.SignedFromSigned:
		return []Check{overflow, {"v < " + minConst(to), "ErrUnderflow"}}
	}
	return nil
}

func maxConst(k safecast.IntKind) string {
	if k.Signed {
		return fmt.Sprintf("math.MaxInt%d", k.Bits)
	}
	return fmt.Sprintf("math.MaxUint%d", k.Bits)
}

func minConst(k safecast.IntKind) string {
	return fmt.Sprintf("math.MinInt%d", k.Bits)
}

// Validate reports every malformed entry of a pair table.
func Validate(pairs []Pair) error {
	var result error
	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		name := p.FuncName()
		if p.From == p.To {
			result = multierror.Append(result, errors.Errorf("%s: identity pair", name))
		}
		for _, t := range []Type{p.From, p.To} {
			if _, err := Lookup(t.Name); err != nil {
				result = multierror.Append(result, errors.Wrap(err, name))
			} else if !t.PointerSized() && t.Bits != 8 && t.Bits != 16 && t.Bits != 32 && t.Bits != 64 {
				result = multierror.Append(result, errors.Errorf("%s: %s has unsupported width %d", name, t.Name, t.Bits))
			}
		}
		if seen[name] {
			result = multierror.Append(result, errors.Errorf("%s: duplicate pair", name))
		}
		seen[name] = true
	}
	return result
}
