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
package vecexpr

import "github.com/RoaringBitmap/roaring/v2"

// Selection converts the []bool result of a boolean program evaluation into
// a compressed row-selection bitmap, which is considerably cheaper to pass
// around or intersect with other selections than a []bool once a column has
// more than a handful of rows.
func Selection(mask []bool) *roaring.Bitmap {
	bm := roaring.New()

	for i, v := range mask {
		if v {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// ApplySelection gathers the rows of col selected by bm, in ascending row
// order.
func ApplySelection(col []float64, bm *roaring.Bitmap) []float64 {
	out := make([]float64, 0, bm.GetCardinality())

	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, col[it.Next()])
	}

	return out
}
