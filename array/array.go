// Package array реализует массив фиксированного размера с проверкой
// границ при доступе. Размер задаётся при построении и больше
// не меняется. Со списком из пакета list никак не связан, это
// независимый контейнер для случаев когда нужен сплошной буфер
// с произвольным индексным доступом.
package array

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"
)

// New конструктор массива из n элементов с нулевыми значениями.
// Нулевой размер недопустим.
func New[T comparable](n int) (*Array[T], error) {
	if n <= 0 {
		return nil, errors.Wrap(ErrorInvalidConstruction, "check requested size").Int("invalid-size", n)
	}

	return &Array[T]{
		data: make([]T, n),
	}, nil
}

// Array массив фиксированного размера владеющий собственным буфером.
type Array[T comparable] struct {
	data []T
}

// NewFilled конструктор массива из n копий данного значения.
func NewFilled[T comparable](n int, value T) (*Array[T], error) {
	a, err := New[T](n)
	if err != nil {
		return nil, err
	}

	for i := range a.data {
		a.data[i] = value
	}

	return a, nil
}

// FromSlice конструктор массива копирующий элементы данного среза.
// Пустой или отсутствующий источник недопустим.
func FromSlice[T comparable](src []T) (*Array[T], error) {
	if len(src) == 0 {
		return nil, errors.Wrap(ErrorInvalidConstruction, "check source buffer").Int("source-length", len(src))
	}

	a := &Array[T]{
		data: make([]T, len(src)),
	}
	copy(a.data, src)

	return a, nil
}

// FromValues конструктор массива из перечисленных значений.
// Без значений массив не построить.
func FromValues[T comparable](values ...T) (*Array[T], error) {
	return FromSlice(values)
}

// Clone независимая копия массива.
func (a *Array[T]) Clone() *Array[T] {
	res := &Array[T]{
		data: make([]T, len(a.data)),
	}
	copy(res.data, a.data)

	return res
}

// CopyFrom замена всего содержимого массива копией содержимого
// другого массива, размер подстраивается под источник.
func (a *Array[T]) CopyFrom(other *Array[T]) {
	if a == other {
		return
	}

	a.data = make([]T, len(other.data))
	copy(a.data, other.data)
}

// Len размер массива.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// At доступ к элементу по индексу. Возвращаемый указатель позволяет
// и чтение и замену значения на месте.
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(a.data) {
		return nil, errors.
			Wrap(ErrorOutOfRange, "check index").
			Int("index", i).
			Int("size", len(a.data))
	}

	return &a.data[i], nil
}

// Equal поэлементное сравнение двух массивов.
// Массивы разных размеров не равны.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if len(a.data) != len(other.data) {
		return false
	}

	for i, v := range a.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Fprint вывод всех элементов массива по порядку через пробел.
func (a *Array[T]) Fprint(w io.Writer) error {
	for i, v := range a.data {
		if i != 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return errors.Wrap(err, "write separator")
			}
		}

		if _, err := fmt.Fprintf(w, "%v", v); err != nil {
			return errors.Wrap(err, "write element").Int("index", i)
		}
	}

	return nil
}

// String текстовое представление массива, см. Fprint.
func (a *Array[T]) String() string {
	var b strings.Builder
	_ = a.Fprint(&b)

	return b.String()
}

// ReadFrom заполнение всех элементов массива значениями из потока,
// значения разделяются пробельными символами.
func (a *Array[T]) ReadFrom(r io.Reader) error {
	for i := range a.data {
		if _, err := fmt.Fscan(r, &a.data[i]); err != nil {
			return errors.Wrap(err, "scan element").Int("index", i)
		}
	}

	return nil
}
