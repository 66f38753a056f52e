package list

import "github.com/sirkon/errors"

const (
	// ErrorEmptyContainer доступ к элементу пустого списка.
	ErrorEmptyContainer errors.Const = "container is empty"

	// ErrorStructural операция над отсутствующим узлом или курсором,
	// либо запрос перестройки ссылок с недопустимыми аргументами.
	ErrorStructural errors.Const = "structural integrity violation"

	// ErrorInvalidConstruction запрос построения с недопустимыми
	// параметрами.
	ErrorInvalidConstruction errors.Const = "invalid construction request"
)

// IsEmptyContainer проверка что ошибка вызвана обращением к пустому списку.
func IsEmptyContainer(err error) bool {
	return errors.Is(err, ErrorEmptyContainer)
}

// IsStructural проверка что ошибка вызвана нарушением структурного контракта.
func IsStructural(err error) bool {
	return errors.Is(err, ErrorStructural)
}

// IsInvalidConstruction проверка что ошибка вызвана недопустимым
// запросом построения.
func IsInvalidConstruction(err error) bool {
	return errors.Is(err, ErrorInvalidConstruction)
}
