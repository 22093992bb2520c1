// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin_test

import (
	"testing"

	"code.hybscloud.com/fin"
)

func TestStepCompleted(t *testing.T) {
	v, susp := fin.Step(fin.Pure(42))
	if susp != nil {
		t.Fatal("unexpected suspension")
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestStepSuspendResume(t *testing.T) {
	comp := fin.Bind(fin.Perform(Probe[int]{}), func(x int) fin.Eff[int] {
		return fin.Pure(x + 1)
	})

	_, susp := fin.Step(comp)
	if susp == nil {
		t.Fatal("expected suspension")
	}
	if _, ok := susp.Op().(Probe[int]); !ok {
		t.Fatalf("op = %T, want Probe[int]", susp.Op())
	}

	v, next := susp.Resume(10)
	if next != nil {
		t.Fatal("unexpected second suspension")
	}
	if v != 11 {
		t.Fatalf("got %d, want 11", v)
	}
}

func TestStepResumeTwicePanics(t *testing.T) {
	_, susp := fin.Step(fin.Perform(Probe[int]{}))
	if susp == nil {
		t.Fatal("expected suspension")
	}
	_, _ = susp.Resume(1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double resume")
		}
	}()
	_, _ = susp.Resume(2)
}

func TestStepTryResume(t *testing.T) {
	_, susp := fin.Step(fin.Perform(Probe[int]{}))
	if susp == nil {
		t.Fatal("expected suspension")
	}

	v, next, ok := susp.TryResume(5)
	if !ok || next != nil || v != 5 {
		t.Fatalf("got (%d, %v, %v), want (5, nil, true)", v, next, ok)
	}

	_, _, ok = susp.TryResume(6)
	if ok {
		t.Fatal("TryResume succeeded twice")
	}
}

func TestStepDiscard(t *testing.T) {
	_, susp := fin.Step(fin.Perform(Probe[int]{}))
	if susp == nil {
		t.Fatal("expected suspension")
	}
	susp.Discard()

	if _, _, ok := susp.TryResume(1); ok {
		t.Fatal("TryResume succeeded after Discard")
	}
}

// Driving a fold step by step surfaces one suspension per index, in order,
// and runs no step before the previous one was resumed.
func TestStepDrivesFoldInOrder(t *testing.T) {
	fold := fin.FoldlM(3, func(acc int, i fin.Idx) fin.Eff[int] {
		return fin.Bind(fin.Perform(Probe[int]{}), func(x int) fin.Eff[int] {
			return fin.Pure(acc + x*i.Value())
		})
	}, 0)

	var seen int
	v, susp := fin.Step(fold)
	for susp != nil {
		seen++
		v, susp = susp.Resume(2)
	}
	if seen != 3 {
		t.Fatalf("suspensions = %d, want 3", seen)
	}
	// 2*0 + 2*1 + 2*2
	if v != 6 {
		t.Fatalf("got %d, want 6", v)
	}
}

// Discarding a suspension abandons the fold: later indices are never visited.
func TestStepDiscardStopsFold(t *testing.T) {
	visited := 0
	fold := fin.FoldlM(5, func(acc int, i fin.Idx) fin.Eff[int] {
		visited++
		return fin.Bind(fin.Perform(Probe[int]{}), func(x int) fin.Eff[int] {
			return fin.Pure(acc + x)
		})
	}, 0)

	_, susp := fin.Step(fold)
	if susp == nil {
		t.Fatal("expected suspension")
	}
	susp.Discard()

	if visited != 1 {
		t.Fatalf("visited = %d, want 1", visited)
	}
}
