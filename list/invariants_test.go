package list

import (
	"testing"

	"golang.org/x/exp/constraints"
)

// checkChain полная проверка согласованности цепочки: соответствие
// счётчика и ссылок first/last, взаимность ссылок prev/next,
// достижимость last из first и first из last.
func checkChain[T constraints.Ordered](t *testing.T, l *List[T]) {
	t.Helper()

	if l.size == 0 {
		if l.first != nil {
			t.Error("empty list must not have a first node")
		}
		if l.last != nil {
			t.Error("empty list must not have a last node")
		}
		return
	}

	if l.first == nil || l.last == nil {
		t.Error("non-empty list must have both first and last nodes")
		return
	}

	if l.first.prev != nil {
		t.Error("first node must not have a predecessor")
	}
	if l.last.next != nil {
		t.Error("last node must not have a successor")
	}

	var forward int
	var prev *Node[T]
	for cur := l.first; cur != nil; cur = cur.next {
		if cur.prev != prev {
			t.Error("backward link does not match the forward pass at position", forward)
			return
		}

		prev = cur
		forward++
		if forward > l.size {
			t.Error("forward chain is longer than the declared size", l.size)
			return
		}
	}

	if prev != l.last {
		t.Error("forward pass did not end at the last node")
	}
	if forward != l.size {
		t.Errorf("forward pass visited %d nodes with declared size %d", forward, l.size)
	}

	var backward int
	for cur := l.last; cur != nil; cur = cur.prev {
		backward++
		if backward > l.size {
			t.Error("backward chain is longer than the declared size", l.size)
			return
		}
	}

	if backward != forward {
		t.Errorf("backward pass visited %d nodes, forward pass %d", backward, forward)
	}
}

// chainValues значения списка в прямом порядке.
func chainValues[T constraints.Ordered](l *List[T]) []T {
	res := make([]T, 0, l.size)
	for cur := l.first; cur != nil; cur = cur.next {
		res = append(res, cur.value)
	}

	return res
}
