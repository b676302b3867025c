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
package gates

import (
	"testing"

	"github.com/wiltonlazary/hardcaml/pkg/util/assert"
)

func Test_ParseConst_Binary(t *testing.T) {
	bits := ParseConst("1101")
	assert.Equal(t, 4, len(bits))
	assert.Equal(t, "1101", BitsToBstr(bits))
}

func Test_ParseConst_VerilogUnsignedHex(t *testing.T) {
	bits := ParseConst("8'hFF")
	assert.Equal(t, 8, len(bits))
	assert.Equal(t, "11111111", BitsToBstr(bits))
}

func Test_ParseConst_VerilogUnsignedDecimal(t *testing.T) {
	bits := ParseConst("8'd5")
	assert.Equal(t, "00000101", BitsToBstr(bits))
}

func Test_ParseConst_VerilogZeroExtendsUnsigned(t *testing.T) {
	bits := ParseConst("8'hF")
	assert.Equal(t, "00001111", BitsToBstr(bits))
}

func Test_ParseConst_VerilogSignedHexSignExtends(t *testing.T) {
	// 4'hF as a plain nibble is 1111; sign bit (nibble MSB) is 1, so
	// widening to 8 bits under the signed base should sign-extend.
	bits := ParseConst("8'HF")
	assert.Equal(t, "11111111", BitsToBstr(bits))
}

func Test_ParseConst_VerilogSignedHexPositive(t *testing.T) {
	bits := ParseConst("8'H7")
	assert.Equal(t, "00000111", BitsToBstr(bits))
}

func Test_ParseConst_VerilogBinaryBase(t *testing.T) {
	bits := ParseConst("4'b101")
	assert.Equal(t, "0101", BitsToBstr(bits))
}

func Test_ParseConst_VerilogOctalBase(t *testing.T) {
	bits := ParseConst("6'o17")
	assert.Equal(t, "001111", BitsToBstr(bits))
}

func Test_BitsToUint64_RoundTrip(t *testing.T) {
	bits := ParseConst("8'd200")
	assert.Equal(t, uint64(200), BitsToUint64(bits))
}

func Test_ParseConst_VerilogUnsignedDecimalRejectsNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on negative digits under an unsigned base")
		}
	}()

	ParseConst("8'd-3")
}

func Test_ParseConst_VerilogSignedDecimalAcceptsNegative(t *testing.T) {
	bits := ParseConst("8'D-3")
	assert.Equal(t, "11111101", BitsToBstr(bits))
}

func Test_BitsToInt64Signed_SignExtendsAndTruncates(t *testing.T) {
	assert.Equal(t, int64(-2), BitsToInt64Signed(ParseConst("4'b1110")))
	assert.Equal(t, int64(5), BitsToInt64Signed(ParseConst("4'b0101")))
}

func Test_BitsToInt32Signed_NarrowsFrom64(t *testing.T) {
	assert.Equal(t, int32(-2), BitsToInt32Signed(ParseConst("4'b1110")))
}

func Test_BitsToUint32_Truncates(t *testing.T) {
	assert.Equal(t, uint32(200), BitsToUint32(ParseConst("8'd200")))
}
