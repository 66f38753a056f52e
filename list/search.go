package list

// Поиск всегда линейный: узлы не несут никакого порядкового индекса,
// поэтому единственный способ найти значение — пройти цепочку по одной
// ссылке за шаг от заданного узла до конца.

// find первый узел с данным значением начиная с from, поиск вперёд.
func (l *List[T]) find(v T, from *Node[T]) *Node[T] {
	for cur := from; cur != nil; cur = cur.next {
		if cur.value == v {
			return cur
		}
	}

	return nil
}

// findNot первый узел со значением отличным от данного начиная
// с from, поиск вперёд.
func (l *List[T]) findNot(v T, from *Node[T]) *Node[T] {
	for cur := from; cur != nil; cur = cur.next {
		if cur.value != v {
			return cur
		}
	}

	return nil
}

// findReversed последний узел с данным значением, поиск назад от from.
func (l *List[T]) findReversed(v T, from *Node[T]) *Node[T] {
	for cur := from; cur != nil; cur = cur.prev {
		if cur.value == v {
			return cur
		}
	}

	return nil
}

// findNotReversed последний узел со значением отличным от данного,
// поиск назад от from.
func (l *List[T]) findNotReversed(v T, from *Node[T]) *Node[T] {
	for cur := from; cur != nil; cur = cur.prev {
		if cur.value != v {
			return cur
		}
	}

	return nil
}

// findMinimum узел с минимальным значением в суффиксе цепочки
// начинающемся с from, сам from участвует в поиске.
// При равенстве минимумов выбирается первый из них.
func (l *List[T]) findMinimum(from *Node[T]) *Node[T] {
	min := from
	for cur := from.next; cur != nil; cur = cur.next {
		if cur.value < min.value {
			min = cur
		}
	}

	return min
}
