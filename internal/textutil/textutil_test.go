package textutil

import (
	"reflect"
	"testing"
)

func TestCleanProductName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "widget 2000", "widget 2000"},
		{"uppercase and punctuation", "  Super-Widget (XL)!! ", "super widget xl"},
		{"multiple separators collapse", "a--b__c   d", "a b c d"},
		{"only punctuation", "***", ""},
		{"empty", "", ""},
		{"digits preserved", "USB 3.0 Hub", "usb 3 0 hub"},
		{"non-ascii replaced", "café", "caf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanProductName(tc.in); got != tc.want {
				t.Errorf("CleanProductName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanProductNames(t *testing.T) {
	in := []string{" Alpha ", "BETA-2", ""}
	want := []string{"alpha", "beta 2", ""}

	got := CleanProductNames(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanProductNames(%v) = %v, want %v", in, got, want)
	}
	if in[0] != " Alpha " {
		t.Error("input slice was mutated")
	}
}

func TestFlatten(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		got := Flatten([][]int{{1, 2}, {3, 4}, {}})
		want := []int{1, 2, 3, 4}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Flatten() = %v, want %v", got, want)
		}
	})

	t.Run("empty outer", func(t *testing.T) {
		if got := Flatten([][]string{}); len(got) != 0 {
			t.Errorf("Flatten(empty) = %v, want empty", got)
		}
	})

	t.Run("one level only", func(t *testing.T) {
		got := Flatten([][][]int{{{1}}, {{2, 3}}})
		want := [][]int{{1}, {2, 3}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Flatten() = %v, want %v (no recursive flattening)", got, want)
		}
	})
}

func TestUniquePreserveOrder(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		got := UniquePreserveOrder([]string{"b", "a", "b", "c", "a"})
		want := []string{"b", "a", "c"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("UniquePreserveOrder() = %v, want %v", got, want)
		}
	})

	t.Run("floats", func(t *testing.T) {
		got := UniquePreserveOrder([]float64{1.5, 1.5, 2})
		want := []float64{1.5, 2}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("UniquePreserveOrder() = %v, want %v", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := UniquePreserveOrder([]int{}); len(got) != 0 {
			t.Errorf("UniquePreserveOrder(empty) = %v, want empty", got)
		}
	})
}
