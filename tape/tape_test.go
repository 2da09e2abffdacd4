package tape

import (
	"testing"

	"github.com/oillang/oil/value"
)

func TestReadAtAbsent(t *testing.T) {
	tp := New()
	v := tp.ReadAt(value.Int(5))
	if got, ok := v.IntValue(); !ok || got != 0 {
		t.Fatalf("ReadAt(absent) = %v, want Int(0)", v)
	}
	if tp.Exists(value.Int(5)) {
		t.Fatal("Exists(5) = true for a cell that was never written")
	}
}

func TestWriteAtDoesNotConfuseAbsent(t *testing.T) {
	tp := New()
	tp.WriteAt(value.Int(5), value.Int(0))
	if !tp.Exists(value.Int(5)) {
		t.Fatal("Exists(5) = false after explicitly storing Int(0)")
	}
}

func TestStepForwardBackward(t *testing.T) {
	tp := New()
	tp.Step()
	if c, _ := tp.Cursor().IntValue(); c != 1 {
		t.Fatalf("cursor = %d, want 1", c)
	}
	tp.ToggleDirection()
	tp.Step()
	if c, _ := tp.Cursor().IntValue(); c != 0 {
		t.Fatalf("cursor = %d, want 0", c)
	}
}

func TestReverseIsInvolution(t *testing.T) {
	tp := New()
	d0 := tp.Direction()
	tp.ToggleDirection()
	tp.ToggleDirection()
	if tp.Direction() != d0 {
		t.Fatal("reverse twice did not restore direction")
	}
}

func TestReadIntAtCursor(t *testing.T) {
	tp := New()
	tp.WriteAt(value.Int(0), value.FromString("hello"))
	if v := tp.ReadIntAtCursor(); v != value.Zero {
		t.Fatalf("ReadIntAtCursor on non-numeric cell = %v, want Int(0)", v)
	}
	tp.WriteAt(value.Int(0), value.Int(42))
	if v := tp.ReadIntAtCursor(); v != value.Int(42) {
		t.Fatalf("ReadIntAtCursor = %v, want Int(42)", v)
	}
}

func TestReadStringAtCoercesInt(t *testing.T) {
	tp := New()
	tp.WriteAt(value.Int(3), value.Int(-7))
	if s := tp.ReadStringAt(value.Int(3)); s != "-7" {
		t.Fatalf("ReadStringAt = %q, want -7", s)
	}
}

func TestWithRoot(t *testing.T) {
	tp := New(WithRoot("/lib"))
	dir, ok := tp.Root()
	if !ok || dir != "/lib" {
		t.Fatalf("Root() = (%q, %v), want (/lib, true)", dir, ok)
	}
	tp2 := New()
	if _, ok := tp2.Root(); ok {
		t.Fatal("Root() ok = true for a tape with no root")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	tp := New()
	tp.WriteAt(value.Int(0), value.Int(1))
	snap := tp.Snapshot()
	tp.WriteAt(value.Int(0), value.Int(2))
	if snap[value.Int(0)] != value.Int(1) {
		t.Fatal("Snapshot aliased the live cell store")
	}
}
