package list

// RemoveIf удаление всех элементов удовлетворяющих предикату.
// Каждый узел посещается ровно один раз в прямом порядке, ссылка
// на следующий узел снимается до возможного удаления текущего.
func (l *List[T]) RemoveIf(pred func(v T) bool) {
	cur := l.first
	for cur != nil {
		next := cur.next
		if pred(cur.value) {
			l.removeNode(cur)
		}

		cur = next
	}
}

// RemoveFirst удаление первого элемента списка.
// Для пустого списка ничего не делает.
func (l *List[T]) RemoveFirst() {
	if l.first == nil {
		return
	}

	f := l.first
	l.first = f.next
	if f.next == nil {
		// в списке был только один элемент
		l.last = nil
	} else {
		f.next.prev = nil
	}

	f.cleanup()
	l.size--
}

// RemoveLast удаление последнего элемента списка.
// Для пустого списка ничего не делает.
func (l *List[T]) RemoveLast() {
	if l.last == nil {
		return
	}

	f := l.last
	l.last = f.prev
	if f.prev == nil {
		// в списке был только один элемент
		l.first = nil
	} else {
		f.prev.next = nil
	}

	f.cleanup()
	l.size--
}

// RemoveAllOf удаление всех элементов с данным значением.
func (l *List[T]) RemoveAllOf(v T) {
	l.removeAllOfFrom(v, l.first)
}

// RemoveFirstOf удаление первого элемента с данным значением.
func (l *List[T]) RemoveFirstOf(v T) {
	l.removeNode(l.find(v, l.first))
}

// RemoveLastOf удаление последнего элемента с данным значением.
func (l *List[T]) RemoveLastOf(v T) {
	l.removeNode(l.findReversed(v, l.last))
}

// RemoveAllNotOf удаление всех элементов со значением отличным от данного.
func (l *List[T]) RemoveAllNotOf(v T) {
	removing := l.findNot(v, l.first)
	for removing != nil {
		next := removing.next
		l.removeNode(removing)
		removing = l.findNot(v, next)
	}
}

// RemoveFirstNotOf удаление первого элемента со значением отличным
// от данного.
func (l *List[T]) RemoveFirstNotOf(v T) {
	l.removeNode(l.findNot(v, l.first))
}

// RemoveLastNotOf удаление последнего элемента со значением отличным
// от данного.
func (l *List[T]) RemoveLastNotOf(v T) {
	l.removeNode(l.findNotReversed(v, l.last))
}

// EraseAll удаление всех элементов списка.
func (l *List[T]) EraseAll() {
	for !l.Empty() {
		l.RemoveFirst()
	}
}

// ReplaceAllWith замена значения во всех узлах содержащих old на repl.
// Ссылки узлов не меняются.
func (l *List[T]) ReplaceAllWith(old, repl T) {
	cur := l.first
	for cur != nil {
		cur = l.find(old, cur)
		if cur == nil {
			break
		}

		cur.value = repl
		cur = cur.next
	}
}

// ReplaceFirstWith замена значения в первом узле содержащем old на repl.
func (l *List[T]) ReplaceFirstWith(old, repl T) {
	if cur := l.find(old, l.first); cur != nil {
		cur.value = repl
	}
}

// ReplaceLastWith замена значения в последнем узле содержащем old на repl.
func (l *List[T]) ReplaceLastWith(old, repl T) {
	if cur := l.findReversed(old, l.last); cur != nil {
		cur.value = repl
	}
}

// removeAllOfFrom удаление всех узлов с данным значением начиная с from.
func (l *List[T]) removeAllOfFrom(v T, from *Node[T]) {
	removing := l.find(v, from)
	for removing != nil {
		next := removing.next
		l.removeNode(removing)
		removing = l.find(v, next)
	}
}
