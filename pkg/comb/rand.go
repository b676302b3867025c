// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package comb

import "math/rand/v2"

// Rng is a deterministic seedable source for Srand, independent per
// instance so concurrent callers observe independent streams. The zero
// value is not ready for use; construct with NewRng.
type Rng struct {
	r *rand.Rand
}

// NewRng constructs a per-instance PRNG seeded deterministically, backed
// by math/rand/v2's ChaCha8 source.
func NewRng(seed uint64) Rng {
	var seedArr [32]byte

	for i := range seedArr {
		seedArr[i] = byte(seed >> (8 * uint(i%8)))
	}

	return Rng{r: rand.New(rand.NewChaCha8(seedArr))}
}

// Srand returns a constant bit-vector of width w drawn from rng.
func (c Comb[T]) Srand(rng Rng, w uint) T {
	bitsMSB := make([]bool, w)

	for i := range bitsMSB {
		bitsMSB[i] = rng.r.IntN(2) == 1
	}

	return c.P.Gates.ConstOfBits(bitsMSB)
}
