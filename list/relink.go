package list

import "github.com/sirkon/errors"

// detachNode отцепление узла от цепочки без потери его значения,
// узел затем можно вставить в другое место или в другой список.
func (l *List[T]) detachNode(n *Node[T]) {
	if n == l.first {
		l.first = n.next
	} else {
		n.prev.next = n.next
	}

	if n == l.last {
		l.last = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.cleanup()
	l.size--
}

// removeNode удаление данного узла из списка.
// Нулевой узел молча пропускается.
func (l *List[T]) removeNode(n *Node[T]) {
	switch {
	case n == nil:
		return
	case n == l.first:
		l.RemoveFirst()
	case n == l.last:
		l.RemoveLast()
	default:
		n.next.prev = n.prev
		n.prev.next = n.next

		n.cleanup()
		l.size--
	}
}

// swapNodes обмен позициями двух узлов цепочки. Меняются только
// ссылки, сами значения остаются в своих узлах. Соседние узлы
// требуют отдельной обработки, она выбирается здесь.
func (l *List[T]) swapNodes(a, b *Node[T]) error {
	if a == nil || b == nil {
		return errors.Wrap(ErrorStructural, "check nodes to swap")
	}

	if a == b {
		// обменивать узел с самим собой незачем
		return nil
	}

	switch {
	case a.next == b:
		l.swapSuccessive(a, b)
	case a.prev == b:
		l.swapSuccessive(b, a)
	default:
		l.swapNonSuccessive(a, b)
	}

	return nil
}

// swapSuccessive обмен позициями двух соседних узлов,
// a непосредственно предшествует b. Пара разворачивается на месте:
// у предшественника пары правится ссылка вперёд либо first,
// у преемника — ссылка назад либо last.
func (l *List[T]) swapSuccessive(a, b *Node[T]) {
	b.prev = a.prev
	a.next = b.next

	if a != l.first {
		b.prev.next = b
	} else {
		l.first = b
	}

	if b != l.last {
		a.next.prev = a
	} else {
		l.last = a
	}

	a.prev = b
	b.next = a
}

// swapNonSuccessive обмен позициями двух узлов между которыми есть
// хотя бы один другой узел. Ссылки назад и вперёд правятся двумя
// независимыми проходами, каждый со своими крайними случаями
// "узел был first" и "узел был last".
func (l *List[T]) swapNonSuccessive(a, b *Node[T]) {
	// правка ссылок назад
	switch {
	case a == l.first:
		b.prev.next = a
		a.prev = b.prev
		b.prev = nil
		l.first = b
	case b == l.first:
		a.prev.next = b
		b.prev = a.prev
		a.prev = nil
		l.first = a
	default:
		a.prev.next = b
		b.prev.next = a
		a.prev, b.prev = b.prev, a.prev
	}

	// правка ссылок вперёд
	switch {
	case a == l.last:
		a.next = b.next
		b.next.prev = a
		b.next = nil
		l.last = b
	case b == l.last:
		b.next = a.next
		a.next.prev = b
		a.next = nil
		l.last = a
	default:
		a.next.prev = b
		b.next.prev = a
		a.next, b.next = b.next, a.next
	}
}
