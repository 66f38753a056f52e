package list

import "golang.org/x/exp/constraints"

// Cursor лёгкая невладеющая ссылка на один узел списка.
// Используется для обхода и для указания позиции структурных
// операций вроде Splice.
//
// Курсор жёстко привязан к узлу: после удаления узла из списка
// курсор считается повисшим и любые операции над ним не определены.
// Проверок поколений нет, это контракт на дисциплину вызывающего.
type Cursor[T constraints.Ordered] struct {
	node *Node[T]
}

// Valid проверка что курсор вообще указывает на узел.
// Повисший курсор этим не выявляется, только нулевой.
func (c Cursor[T]) Valid() bool {
	return c.node != nil
}

// Next сдвиг курсора к следующему узлу.
// На последнем узле цепочки курсор остаётся на месте.
func (c *Cursor[T]) Next() {
	if c.node.next != nil {
		c.node = c.node.next
	}
}

// Prev сдвиг курсора к предыдущему узлу.
// На первом узле цепочки курсор остаётся на месте.
func (c *Cursor[T]) Prev() {
	if c.node.prev != nil {
		c.node = c.node.prev
	}
}

// Value возврат значения узла под курсором.
func (c Cursor[T]) Value() T {
	return c.node.value
}

// Set замена значения узла под курсором. Связи узла не меняются.
func (c Cursor[T]) Set(v T) {
	c.node.value = v
}

// Eq проверка что два курсора указывают на один и тот же узел.
func (c Cursor[T]) Eq(other Cursor[T]) bool {
	return c.node == other.node
}
