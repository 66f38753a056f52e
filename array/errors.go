package array

import "github.com/sirkon/errors"

const (
	// ErrorInvalidConstruction запрос построения массива нулевого
	// размера либо из отсутствующего источника.
	ErrorInvalidConstruction errors.Const = "invalid construction request"

	// ErrorOutOfRange обращение по индексу за пределами массива.
	ErrorOutOfRange errors.Const = "index is out of range"
)

// IsInvalidConstruction проверка что ошибка вызвана недопустимым
// запросом построения.
func IsInvalidConstruction(err error) bool {
	return errors.Is(err, ErrorInvalidConstruction)
}

// IsOutOfRange проверка что ошибка вызвана выходом индекса за границы.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrorOutOfRange)
}
