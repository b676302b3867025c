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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wiltonlazary/hardcaml/pkg/bits"
	"github.com/wiltonlazary/hardcaml/pkg/comb"
)

var truthTableOps = map[string]func(c comb.Comb[bits.Value], x bits.Value) bits.Value{
	"popcount":         func(c comb.Comb[bits.Value], x bits.Value) bits.Value { return c.Popcount(2, x) },
	"leading-zeros":    func(c comb.Comb[bits.Value], x bits.Value) bits.Value { return c.LeadingZeros(2, x) },
	"binary-to-gray":   func(c comb.Comb[bits.Value], x bits.Value) bits.Value { return c.BinaryToGray(x) },
	"gray-to-binary":   func(c comb.Comb[bits.Value], x bits.Value) bits.Value { return c.GrayToBinary(x) },
	"binary-to-onehot": func(c comb.Comb[bits.Value], x bits.Value) bits.Value { return c.BinaryToOnehot(x) },
	"reverse":          func(c comb.Comb[bits.Value], x bits.Value) bits.Value { return c.Reverse(x) },
}

var truthTableCmd = &cobra.Command{
	Use:   "truth-table <op> <width>",
	Short: "Print the full truth table of a unary operator for a given input width.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		op, ok := truthTableOps[args[0]]
		if !ok {
			names := make([]string, 0, len(truthTableOps))
			for k := range truthTableOps {
				names = append(names, k)
			}

			log.Fatalf("unknown op %q, expected one of: %s", args[0], strings.Join(names, ", "))
		}

		var width uint

		if _, err := fmt.Sscanf(args[1], "%d", &width); err != nil || width == 0 || width > 16 {
			log.Fatalf("width must be an integer in [1, 16], got %q", args[1])
		}

		c := comb.MakeComb(bits.NativePrimitives())
		cols, _, _ := term.GetSize(0)

		if cols <= 0 {
			cols = 80
		}

		for i := uint64(0); i < uint64(1)<<width; i++ {
			x := c.Const(fmt.Sprintf("%d'd%d", width, i))
			y := op(c, x)
			xs, _ := c.P.Gates.ToBstr(x)
			ys, _ := c.P.Gates.ToBstr(y)
			line := fmt.Sprintf("%s -> %s", xs, ys)

			if len(line) > cols {
				line = line[:cols]
			}

			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(truthTableCmd)
}
