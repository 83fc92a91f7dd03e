package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/signadot/runnel/value"
)

func TestMap(t *testing.T) {
	src := Map(FromValues(value.FromInt(1), value.FromInt(2)), func(v *value.Value) (*value.Value, error) {
		return value.FromInt(*v.Int64 + 10), nil
	})
	vs, err := Collect(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{11, 12}
	for i, v := range vs {
		if *v.Int64 != want[i] {
			t.Errorf("value %d: got %d want %d", i, *v.Int64, want[i])
		}
	}
}

func TestMapFailFast(t *testing.T) {
	boom := errors.New("boom")
	pulls := 0
	src := &countingSource{src: FromValues(
		value.FromInt(1), value.FromInt(2), value.FromInt(3),
	)}
	m := Map(src, func(v *value.Value) (*value.Value, error) {
		pulls++
		if *v.Int64 == 2 {
			return nil, boom
		}
		return v, nil
	})
	if _, err := m.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Next(); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if _, err := m.Next(); err != io.EOF {
		t.Errorf("got %v after failure, want io.EOF", err)
	}
	if src.pulls != 2 {
		t.Errorf("pulled %d items, want 2", src.pulls)
	}
	if pulls != 2 {
		t.Errorf("mapped %d items, want 2", pulls)
	}
}

func TestFilter(t *testing.T) {
	src := Filter(FromValues(
		value.FromInt(1), value.FromInt(2), value.FromInt(3), value.FromInt(4),
	), func(v *value.Value) (bool, error) {
		return *v.Int64%2 == 0, nil
	})
	vs, err := Collect(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{2, 4}
	if len(vs) != len(want) {
		t.Fatalf("got %d values, want %d", len(vs), len(want))
	}
	for i, v := range vs {
		if *v.Int64 != want[i] {
			t.Errorf("value %d: got %d want %d", i, *v.Int64, want[i])
		}
	}
}

func TestFilterError(t *testing.T) {
	boom := errors.New("boom")
	f := Filter(FromValues(value.FromInt(1)), func(v *value.Value) (bool, error) {
		return false, boom
	})
	if _, err := f.Next(); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if _, err := f.Next(); err != io.EOF {
		t.Errorf("got %v after failure, want io.EOF", err)
	}
}
