package list

import "github.com/sirkon/errors"

// Swap обмен содержимым двух списков за O(1).
// Обмен списка с самим собой ничего не делает.
func (l *List[T]) Swap(other *List[T]) {
	if l.Same(other) {
		return
	}

	l.first, other.first = other.first, l.first
	l.last, other.last = other.last, l.last
	l.size, other.size = other.size, l.size
}

// Resize приведение списка ровно к n элементам: лишние удаляются
// с конца, недостающие добавляются копиями fill.
func (l *List[T]) Resize(n int, fill T) error {
	if n < 0 {
		return errors.Wrap(ErrorInvalidConstruction, "check requested size").Int("invalid-size", n)
	}

	for n < l.Len() {
		l.RemoveLast()
	}

	for n > l.Len() {
		l.Append(fill)
	}

	return nil
}

// Unique схлопывание дубликатов: для каждого узла в прямом порядке
// удаляются все последующие узлы с равным значением. Сортированности
// не требуется, результат определяется именно этим прямым поиском
// от каждого узла.
func (l *List[T]) Unique() {
	for cur := l.first; cur != nil; cur = cur.next {
		l.removeAllOfFrom(cur.value, cur.next)
	}
}

// Sort сортировка списка по возрастанию выбором: для каждой позиции
// начиная с первой ищется минимальный узел оставшегося суффикса
// и обменом позиций ставится на её место. Перемещаются целые узлы,
// значения по памяти не копируются.
func (l *List[T]) Sort() {
	if l.Empty() || l.first == l.last {
		// нечего сортировать
		return
	}

	swapNode := l.first
	for swapNode != nil {
		minNode := l.findMinimum(swapNode)
		_ = l.swapNodes(minNode, swapNode)

		// после обмена minNode стоит на месте swapNode, продолжаем
		// с узла следующего за вытесненным
		swapNode = minNode.next
	}
}

// Merge слияние другого сортированного списка в данный.
// Несортированные операнды предварительно сортируются. Узлы
// источника перецепляются без копирования значений, по завершению
// источник пуст, а данный список содержит все элементы обоих
// в порядке возрастания.
func (l *List[T]) Merge(other *List[T]) {
	if l.Same(other) {
		return
	}

	if !l.IsSorted() {
		l.Sort()
	}

	if !other.IsSorted() {
		other.Sort()
	}

	for cur := l.first; cur != nil; {
		front := other.first
		if front == nil {
			break
		}

		if cur.value > front.value {
			// пока голова источника строго меньше текущего узла,
			// она перецепляется прямо перед ним, сам узел стоит
			other.detachNode(front)
			l.prependNode(cur, front)
		} else {
			cur = cur.next
		}
	}

	// остаток источника уже сортирован и не меньше всего вставленного
	if !other.Empty() {
		l.Concatenate(other)
	}
}

// Concatenate перецепление всей цепочки другого списка за хвост
// данного за O(1). Источник остаётся пустым.
func (l *List[T]) Concatenate(other *List[T]) {
	if l.Same(other) || other.Empty() {
		return
	}

	if l.Empty() {
		// у пустого списка нет хвоста, граничные ссылки не трогаем
		l.first = other.first
	} else {
		other.first.prev = l.last
		l.last.next = other.first
	}

	l.last = other.last
	l.size += other.size

	other.first = nil
	other.last = nil
	other.size = 0
}

// Splice перецепление всей цепочки другого списка сразу после узла
// на который указывает курсор. Курсор обязан указывать на узел
// данного списка. Источник остаётся пустым.
func (l *List[T]) Splice(at Cursor[T], other *List[T]) error {
	if !at.Valid() {
		return errors.Wrap(ErrorStructural, "check splice target cursor")
	}

	if l.Same(other) {
		return errors.Wrap(ErrorStructural, "splice a list into itself")
	}

	l.appendChain(at.node, other)
	return nil
}
