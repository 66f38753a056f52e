package list

import "golang.org/x/exp/constraints"

// Node узел списка владеющий одним значением.
// Ссылка next ведёт к следующему узлу цепочки, prev — к предыдущему.
// Перестройкой ссылок занимается исключительно список, сам узел
// свои связи не меняет.
type Node[T constraints.Ordered] struct {
	prev *Node[T]
	next *Node[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// sorted рекурсивная проверка что цепочка начиная с данного узла
// не убывает по отношению порядка элемента.
func (n *Node[T]) sorted() bool {
	if n.next == nil {
		return true
	}

	if n.next.value < n.value {
		return false
	}

	return n.next.sorted()
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
