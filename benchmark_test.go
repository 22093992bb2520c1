// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin_test

import (
	"testing"

	"code.hybscloud.com/fin"
)

func BenchmarkFoldl(b *testing.B) {
	for b.Loop() {
		_ = fin.Foldl(256, func(acc int, i fin.Idx) int { return acc + i.Value() }, 0)
	}
}

func BenchmarkFoldlM(b *testing.B) {
	for b.Loop() {
		_ = fin.RunPure(fin.FoldlM(256, func(acc int, i fin.Idx) fin.Eff[int] {
			return fin.Pure(acc + i.Value())
		}, 0))
	}
}

func BenchmarkFoldrM(b *testing.B) {
	for b.Loop() {
		_ = fin.RunPure(fin.FoldrM(256, func(i fin.Idx, acc int) fin.Eff[int] {
			return fin.Pure(acc + i.Value())
		}, 0))
	}
}

func BenchmarkSum(b *testing.B) {
	for b.Loop() {
		_ = fin.Sum(256, func(i fin.Idx) int { return i.Value() })
	}
}

func BenchmarkFind(b *testing.B) {
	for b.Loop() {
		_ = fin.Find(256, func(i fin.Idx) bool { return i.Value() == 128 })
	}
}

func BenchmarkFoldlMError(b *testing.B) {
	for b.Loop() {
		_ = fin.RunError[string](fin.FoldlM(256, func(acc int, i fin.Idx) fin.Eff[int] {
			return fin.Pure(acc + i.Value())
		}, 0))
	}
}

func BenchmarkList(b *testing.B) {
	for b.Loop() {
		_ = fin.List(256)
	}
}
