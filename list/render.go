package list

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"
)

// emptyListPlaceholder выводится вместо элементов для пустого списка.
const emptyListPlaceholder = "-- empty list --"

// Fprint вывод всех элементов списка в прямом порядке через пробел.
// Для пустого списка выводится заглушка.
func (l *List[T]) Fprint(w io.Writer) error {
	if l.Empty() {
		if _, err := io.WriteString(w, emptyListPlaceholder); err != nil {
			return errors.Wrap(err, "write empty list placeholder")
		}

		return nil
	}

	for cur := l.first; cur != nil; cur = cur.next {
		if cur != l.first {
			if _, err := io.WriteString(w, " "); err != nil {
				return errors.Wrap(err, "write separator")
			}
		}

		if _, err := fmt.Fprintf(w, "%v", cur.value); err != nil {
			return errors.Wrap(err, "write element")
		}
	}

	return nil
}

// String текстовое представление списка, см. Fprint.
func (l *List[T]) String() string {
	var b strings.Builder
	_ = l.Fprint(&b)

	return b.String()
}
