package list

// Append добавление нового значения в конец списка.
func (l *List[T]) Append(v T) {
	n := &Node[T]{
		prev:  l.last,
		value: v,
	}

	if l.first == nil {
		l.first = n
		l.last = n
		l.size++
		return
	}

	l.last.next = n
	l.last = n
	l.size++
}

// Prepend добавление нового значения в начало списка.
func (l *List[T]) Prepend(v T) {
	n := &Node[T]{
		next:  l.first,
		value: v,
	}

	if l.first == nil {
		l.first = n
		l.last = n
		l.size++
		return
	}

	l.first.prev = n
	l.first = n
	l.size++
}

// EmplaceAppend добавление в конец списка значения построенного
// на месте данной фабрикой.
func (l *List[T]) EmplaceAppend(ctor func() T) {
	l.Append(ctor())
}

// EmplacePrepend добавление в начало списка значения построенного
// на месте данной фабрикой.
func (l *List[T]) EmplacePrepend(ctor func() T) {
	l.Prepend(ctor())
}

// appendNode вставка уже существующего узла сразу после base.
// Узел должен быть отцеплен, base — принадлежать списку.
func (l *List[T]) appendNode(base, n *Node[T]) {
	if base == l.last {
		l.last = n
	} else {
		base.next.prev = n
	}

	n.prev = base
	n.next = base.next
	base.next = n

	l.size++
}

// prependNode вставка уже существующего узла непосредственно перед base.
// Узел должен быть отцеплен, base — принадлежать списку.
func (l *List[T]) prependNode(base, n *Node[T]) {
	if base == l.first {
		l.first = n
	} else {
		base.prev.next = n
	}

	n.next = base
	n.prev = base.prev
	base.prev = n

	l.size++
}

// appendChain вставка всей цепочки чужого списка сразу после base.
// Источник остаётся пустым.
func (l *List[T]) appendChain(base *Node[T], other *List[T]) {
	if base == l.last {
		l.Concatenate(other)
		return
	}

	if other.Empty() {
		return
	}

	base.next.prev = other.last
	other.last.next = base.next

	other.first.prev = base
	base.next = other.first

	l.size += other.size

	other.first = nil
	other.last = nil
	other.size = 0
}
