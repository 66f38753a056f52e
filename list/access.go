package list

import "github.com/sirkon/errors"

// First доступ к первому элементу списка. Возвращаемый указатель
// позволяет и чтение и замену значения на месте.
func (l *List[T]) First() (*T, error) {
	if l.Empty() {
		return nil, errors.Wrap(ErrorEmptyContainer, "get first element")
	}

	return &l.first.value, nil
}

// Last доступ к последнему элементу списка. Возвращаемый указатель
// позволяет и чтение и замену значения на месте.
func (l *List[T]) Last() (*T, error) {
	if l.Empty() {
		return nil, errors.Wrap(ErrorEmptyContainer, "get last element")
	}

	return &l.last.value, nil
}
