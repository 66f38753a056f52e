package list

import (
	"testing"

	"github.com/sirkon/deepequal"
)

func TestRemoveIf(t *testing.T) {
	tests := []struct {
		name string
		src  []int
		pred func(v int) bool
		want []int
	}{
		{
			name: "evens",
			src:  []int{1, 2, 3, 4, 5},
			pred: func(v int) bool { return v%2 == 0 },
			want: []int{1, 3, 5},
		},
		{
			name: "everything",
			src:  []int{1, 2, 3},
			pred: func(v int) bool { return true },
			want: []int{},
		},
		{
			name: "nothing",
			src:  []int{1, 2, 3},
			pred: func(v int) bool { return false },
			want: []int{1, 2, 3},
		},
		{
			name: "edges only",
			src:  []int{9, 1, 2, 9},
			pred: func(v int) bool { return v == 9 },
			want: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromValues(tt.src...)
			l.RemoveIf(tt.pred)
			checkChain(t, l)

			got := chainValues(l)
			if !deepequal.Equal(tt.want, got) {
				t.Error("unexpected content after removal")
				deepequal.SideBySide(t, "values", tt.want, got)
			}
		})
	}
}

func TestRemoveEnds(t *testing.T) {
	t.Run("remove first", func(t *testing.T) {
		l := FromValues(1, 2, 3)
		l.RemoveFirst()
		checkChain(t, l)

		if !deepequal.Equal([]int{2, 3}, chainValues(l)) {
			deepequal.SideBySide(t, "values", []int{2, 3}, chainValues(l))
		}
	})

	t.Run("remove last twice", func(t *testing.T) {
		l := FromValues(10, 20, 30, 40)
		l.RemoveLast()
		l.RemoveLast()
		checkChain(t, l)

		if l.Len() != 2 {
			t.Errorf("expected 2 elements left, got %d", l.Len())
		}

		last, err := l.Last()
		if err != nil {
			t.Fatal(err)
		}
		if *last != 20 {
			t.Errorf("expected the original second element 20, got %d", *last)
		}
	})

	t.Run("drain to empty and below", func(t *testing.T) {
		l := FromValues(1)
		l.RemoveFirst()
		checkChain(t, l)
		l.RemoveFirst() // пустой список, ничего не происходит
		l.RemoveLast()
		checkChain(t, l)

		if !l.Empty() {
			t.Error("list must be empty")
		}
	})

	t.Run("single element via remove last", func(t *testing.T) {
		l := FromValues(1)
		l.RemoveLast()
		checkChain(t, l)

		if !l.Empty() {
			t.Error("list must be empty")
		}
	})
}

func TestRemoveByValue(t *testing.T) {
	tests := []struct {
		name string
		src  []int
		op   func(l *List[int])
		want []int
	}{
		{
			name: "all of",
			src:  []int{1, 2, 1, 3, 1},
			op:   func(l *List[int]) { l.RemoveAllOf(1) },
			want: []int{2, 3},
		},
		{
			name: "all of absent value",
			src:  []int{1, 2, 3},
			op:   func(l *List[int]) { l.RemoveAllOf(7) },
			want: []int{1, 2, 3},
		},
		{
			name: "first of",
			src:  []int{1, 2, 1, 3},
			op:   func(l *List[int]) { l.RemoveFirstOf(1) },
			want: []int{2, 1, 3},
		},
		{
			name: "last of",
			src:  []int{1, 2, 1, 3},
			op:   func(l *List[int]) { l.RemoveLastOf(1) },
			want: []int{1, 2, 3},
		},
		{
			name: "all not of",
			src:  []int{1, 2, 1, 3, 1},
			op:   func(l *List[int]) { l.RemoveAllNotOf(1) },
			want: []int{1, 1, 1},
		},
		{
			name: "first not of",
			src:  []int{1, 2, 3},
			op:   func(l *List[int]) { l.RemoveFirstNotOf(1) },
			want: []int{1, 3},
		},
		{
			name: "last not of",
			src:  []int{2, 1, 3, 1},
			op:   func(l *List[int]) { l.RemoveLastNotOf(1) },
			want: []int{2, 1, 1},
		},
		{
			name: "erase all",
			src:  []int{1, 2, 3},
			op:   func(l *List[int]) { l.EraseAll() },
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromValues(tt.src...)
			tt.op(l)
			checkChain(t, l)

			got := chainValues(l)
			if !deepequal.Equal(tt.want, got) {
				t.Error("unexpected content after removal")
				deepequal.SideBySide(t, "values", tt.want, got)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name string
		src  []int
		op   func(l *List[int])
		want []int
	}{
		{
			name: "replace all",
			src:  []int{1, 2, 1, 3},
			op:   func(l *List[int]) { l.ReplaceAllWith(1, 9) },
			want: []int{9, 2, 9, 3},
		},
		{
			name: "replace first",
			src:  []int{1, 2, 1, 3},
			op:   func(l *List[int]) { l.ReplaceFirstWith(1, 9) },
			want: []int{9, 2, 1, 3},
		},
		{
			name: "replace last",
			src:  []int{1, 2, 1, 3},
			op:   func(l *List[int]) { l.ReplaceLastWith(1, 9) },
			want: []int{1, 2, 9, 3},
		},
		{
			name: "replace absent value",
			src:  []int{1, 2, 3},
			op:   func(l *List[int]) { l.ReplaceAllWith(7, 9) },
			want: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromValues(tt.src...)
			before := l.Len()
			tt.op(l)
			checkChain(t, l)

			if l.Len() != before {
				t.Error("replacement must not change the element count")
			}

			got := chainValues(l)
			if !deepequal.Equal(tt.want, got) {
				t.Error("unexpected content after replacement")
				deepequal.SideBySide(t, "values", tt.want, got)
			}
		})
	}
}
