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

var evalCmd = &cobra.Command{
	Use:   "eval <literal>",
	Short: "Parse a constant literal and print its width, binary and decimal forms.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := comb.MakeComb(bits.NativePrimitives())

		log.Debugf("parsing literal %q", args[0])

		x := c.Const(args[0])
		bstr, _ := c.P.Gates.ToBstr(x)
		val, _ := c.P.Gates.ToInt(x)

		fmt.Printf("width: %d\n", c.Width(x))
		fmt.Printf("binary: %s\n", bstr)
		fmt.Printf("unsigned: %d\n", val)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
