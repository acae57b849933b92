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

// Package safecast converts between Go integer types without changing the
// value. A conversion either returns the same number in the destination
// type or reports ErrOverflow / ErrUnderflow; it never truncates.
//
// Every ordered pair of integer types has a named function, for example
// Uint16ToUint8. Pairs that cannot fail on any target return only the
// result. The pair functions are generated from the table in pkg/gen;
// pairs involving int or uint are generated once per pointer width and
// selected with build constraints.
package safecast

//go:generate go run ../../cmd/safecastgen generate --dir .
