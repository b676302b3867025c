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
package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wiltonlazary/hardcaml/pkg/bits"
	"github.com/wiltonlazary/hardcaml/pkg/comb"
)

var randCmd = &cobra.Command{
	Use:   "rand <width> <seed> <count>",
	Short: "Print count deterministic random constants of the given width, from the given seed.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		var width, seed, count uint64

		if _, err := fmt.Sscanf(args[0], "%d", &width); err != nil {
			log.Fatalf("invalid width %q: %v", args[0], err)
		}

		if _, err := fmt.Sscanf(args[1], "%d", &seed); err != nil {
			log.Fatalf("invalid seed %q: %v", args[1], err)
		}

		if _, err := fmt.Sscanf(args[2], "%d", &count); err != nil {
			log.Fatalf("invalid count %q: %v", args[2], err)
		}

		c := comb.MakeComb(bits.NativePrimitives())
		rng := comb.NewRng(seed)

		for i := uint64(0); i < count; i++ {
			x := c.Srand(rng, uint(width))
			s, _ := c.P.Gates.ToBstr(x)
			fmt.Println(s)
		}
	},
}

func init() {
	rootCmd.AddCommand(randCmd)
}
