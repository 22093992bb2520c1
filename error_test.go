// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin_test

import (
	"testing"

	"code.hybscloud.com/fin"
)

func TestRunErrorSuccess(t *testing.T) {
	got := fin.RunError[string](fin.Pure(42))
	if !got.IsRight() {
		t.Fatal("want Right")
	}
	v, _ := got.GetRight()
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestRunErrorThrow(t *testing.T) {
	got := fin.RunError[string](fin.ThrowError[string, int]("boom"))
	if !got.IsLeft() {
		t.Fatal("want Left")
	}
	e, _ := got.GetLeft()
	if e != "boom" {
		t.Fatalf("got %q, want %q", e, "boom")
	}
}

func TestThrowAbortsContinuation(t *testing.T) {
	comp := fin.Bind(
		fin.ThrowError[string, int]("boom"),
		func(x int) fin.Eff[int] {
			t.Fatal("continuation ran after throw")
			return fin.Pure(x)
		},
	)
	got := fin.RunError[string](comp)
	if !got.IsLeft() {
		t.Fatal("want Left")
	}
}

func TestCatchError(t *testing.T) {
	comp := fin.CatchError(
		fin.ThrowError[string, int]("boom"),
		func(e string) fin.Eff[int] {
			return fin.Pure(len(e))
		},
	)
	got := fin.RunError[string](comp)
	v, ok := got.GetRight()
	if !ok || v != 4 {
		t.Fatalf("got (%d, %v), want (4, true)", v, ok)
	}
}

func TestCatchErrorRethrow(t *testing.T) {
	comp := fin.CatchError(
		fin.ThrowError[string, int]("boom"),
		func(e string) fin.Eff[int] {
			return fin.ThrowError[string, int](e + "!")
		},
	)
	got := fin.RunError[string](comp)
	e, ok := got.GetLeft()
	if !ok || e != "boom!" {
		t.Fatalf("got (%q, %v), want (%q, true)", e, ok, "boom!")
	}
}

func TestEitherAccessors(t *testing.T) {
	r := fin.Right[string](7)
	if r.IsLeft() || !r.IsRight() {
		t.Fatal("Right misclassified")
	}
	if _, ok := r.GetLeft(); ok {
		t.Fatal("GetLeft on Right returned ok")
	}

	l := fin.Left[string, int]("err")
	if l.IsRight() || !l.IsLeft() {
		t.Fatal("Left misclassified")
	}
	if _, ok := l.GetRight(); ok {
		t.Fatal("GetRight on Left returned ok")
	}
}

func TestMatchEither(t *testing.T) {
	got := fin.MatchEither(fin.Right[string](3),
		func(e string) int { return -1 },
		func(a int) int { return a * 2 },
	)
	if got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestMapEither(t *testing.T) {
	got := fin.MapEither(fin.Right[string](3), func(a int) int { return a + 1 })
	v, _ := got.GetRight()
	if v != 4 {
		t.Fatalf("got %d, want 4", v)
	}

	left := fin.MapEither(fin.Left[string, int]("e"), func(a int) int { return a + 1 })
	if !left.IsLeft() {
		t.Fatal("Map over Left lost the error")
	}
}

func TestFlatMapEither(t *testing.T) {
	got := fin.FlatMapEither(fin.Right[string](3), func(a int) fin.Either[string, int] {
		return fin.Right[string](a * 10)
	})
	v, _ := got.GetRight()
	if v != 30 {
		t.Fatalf("got %d, want 30", v)
	}
}

func TestMapLeftEither(t *testing.T) {
	got := fin.MapLeftEither(fin.Left[string, int]("e"), func(e string) int { return len(e) })
	l, _ := got.GetLeft()
	if l != 1 {
		t.Fatalf("got %d, want 1", l)
	}
}
