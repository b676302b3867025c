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

	"github.com/spf13/cobra"

	"github.com/wiltonlazary/hardcaml/pkg/bits"
	"github.com/wiltonlazary/hardcaml/pkg/comb"
)

var bitsCmd = &cobra.Command{
	Use:   "bits <literal>",
	Short: "Print msb/lsb, reverse and split-in-half views of a constant literal.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := comb.MakeComb(bits.NativePrimitives())
		x := c.Const(args[0])

		show := func(label string, y bits.Value) {
			s, _ := c.P.Gates.ToBstr(y)
			fmt.Printf("%-12s %s\n", label+":", s)
		}

		show("value", x)

		if c.Width(x) >= 1 {
			show("msb", c.Msb(x))
			show("lsb", c.Lsb(x))
			show("reverse", c.Reverse(x))
		}

		if c.Width(x)%2 == 0 && c.Width(x) > 0 {
			hi, lo := c.SplitInHalf(x)
			show("hi-half", hi)
			show("lo-half", lo)
		}
	},
}

func init() {
	rootCmd.AddCommand(bitsCmd)
}
