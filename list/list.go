package list

import (
	"github.com/sirkon/errors"
	"golang.org/x/exp/constraints"
)

// New конструктор пустого двусвязного списка.
func New[T constraints.Ordered]() *List[T] {
	return &List[T]{}
}

// List двусвязный список владеющий цепочкой узлов.
// Хранит ссылки на первый и последний узлы и счётчик элементов.
// Между публичными вызовами выполняются инварианты:
//
//   - size == 0 тогда и только тогда когда first == nil и last == nil;
//   - проход по next от first за size шагов достигает last;
//   - проход по prev от last за size шагов достигает first;
//   - у непустого списка first.prev == nil и last.next == nil.
//
// WARNING: не предоставляет гарантий безопасности при многопоточном доступе.
type List[T constraints.Ordered] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// NewSized конструктор списка из n элементов с нулевыми значениями.
// n == 0 допустим и даёт пустой список.
func NewSized[T constraints.Ordered](n int) (*List[T], error) {
	if n < 0 {
		return nil, errors.Wrap(ErrorInvalidConstruction, "check requested size").Int("invalid-size", n)
	}

	l := New[T]()
	for l.Len() < n {
		l.EmplaceAppend(func() (zero T) { return zero })
	}

	return l, nil
}

// NewFilled конструктор списка из n копий данного значения.
func NewFilled[T constraints.Ordered](n int, value T) (*List[T], error) {
	if n < 0 {
		return nil, errors.Wrap(ErrorInvalidConstruction, "check requested size").Int("invalid-size", n)
	}

	l := New[T]()
	for l.Len() < n {
		l.Append(value)
	}

	return l, nil
}

// NewRange конструктор списка из диапазона заданного парой курсоров.
// Копируются все элементы от begin до end включительно, т.е. end
// указывает на последний копируемый элемент, а не за него.
// Если end не достижим из begin по ссылкам next, построение
// завершается структурной ошибкой.
func NewRange[T constraints.Ordered](begin, end Cursor[T]) (*List[T], error) {
	if !begin.Valid() || !end.Valid() {
		return nil, errors.Wrap(ErrorStructural, "check range cursors")
	}

	l := New[T]()
	for cur := begin.node; ; cur = cur.next {
		l.Append(cur.value)
		if cur == end.node {
			break
		}

		if cur.next == nil {
			return nil, errors.
				Wrap(ErrorStructural, "reach the end cursor").
				Int("copied-so-far", l.Len())
		}
	}

	return l, nil
}

// FromValues конструктор списка из перечисленных значений,
// порядок сохраняется.
func FromValues[T constraints.Ordered](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Take перемещающий конструктор: забирает цепочку источника целиком,
// источник остаётся пустым.
func Take[T constraints.Ordered](src *List[T]) *List[T] {
	l := &List[T]{
		first: src.first,
		last:  src.last,
		size:  src.size,
	}

	src.first = nil
	src.last = nil
	src.size = 0

	return l
}

// Clone поэлементная копия списка с независимым хранением.
func (l *List[T]) Clone() *List[T] {
	res := New[T]()
	for cur := l.first; cur != nil; cur = cur.next {
		res.Append(cur.value)
	}

	return res
}

// Len текущее количество элементов.
func (l *List[T]) Len() int {
	return l.size
}

// Empty проверка что список пуст.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Same проверка что оба имени ссылаются на один и тот же список.
func (l *List[T]) Same(other *List[T]) bool {
	return l == other
}

// EqualValues поэлементное сравнение двух списков.
func (l *List[T]) EqualValues(other *List[T]) bool {
	if l.size != other.size {
		return false
	}

	b := other.first
	for a := l.first; a != nil; a = a.next {
		if a.value != b.value {
			return false
		}

		b = b.next
	}

	return true
}

// IsSorted проверка что элементы списка не убывают.
// Пустой список сортированным не считается.
func (l *List[T]) IsSorted() bool {
	return !l.Empty() && l.first.sorted()
}

// Begin курсор на первый элемент списка.
func (l *List[T]) Begin() (Cursor[T], error) {
	if l.Empty() {
		return Cursor[T]{}, errors.Wrap(ErrorEmptyContainer, "take begin cursor")
	}

	return Cursor[T]{node: l.first}, nil
}

// End курсор на последний элемент списка.
// В отличие от привычного end это именно последний элемент,
// а не позиция за ним.
func (l *List[T]) End() (Cursor[T], error) {
	if l.Empty() {
		return Cursor[T]{}, errors.Wrap(ErrorEmptyContainer, "take end cursor")
	}

	return Cursor[T]{node: l.last}, nil
}
