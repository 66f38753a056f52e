package list_test

import (
	"fmt"
	"os"

	"github.com/sirkon/containers/list"
)

func ExampleList_Sort() {
	l := list.FromValues(5, 3, 8, 1)
	l.Sort()
	fmt.Println(l)

	// Output:
	// 1 3 5 8
}

func ExampleList_Merge() {
	a := list.FromValues(1, 7)
	b := list.FromValues(2, 3, 9)

	a.Merge(b)
	fmt.Println(a)
	fmt.Println(b)

	// Output:
	// 1 2 3 7 9
	// -- empty list --
}

func ExampleList_RemoveIf() {
	l := list.FromValues(1, 2, 3, 4, 5)
	l.RemoveIf(func(v int) bool { return v%2 == 0 })
	fmt.Println(l)

	// Output:
	// 1 3 5
}

func ExampleList_Unique() {
	l := list.FromValues(1, 1, 2, 2, 2, 3)
	l.Unique()
	fmt.Println(l)

	// Output:
	// 1 2 3
}

func ExampleList_Splice() {
	dst := list.FromValues(1, 2, 5)
	src := list.FromValues(3, 4)

	at, err := dst.Begin()
	if err != nil {
		panic(err)
	}
	at.Next()

	if err := dst.Splice(at, src); err != nil {
		panic(err)
	}

	fmt.Println(dst)

	// Output:
	// 1 2 3 4 5
}

func ExampleList_Fprint() {
	l := list.FromValues("just", "a", "few", "words")
	if err := l.Fprint(os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	// just a few words
}

func ExampleList_First() {
	l := list.New[int]()
	if _, err := l.First(); err != nil {
		fmt.Println(list.IsEmptyContainer(err))
	}

	l.Append(9)
	v, err := l.First()
	if err != nil {
		panic(err)
	}
	fmt.Println(*v)

	// Output:
	// true
	// 9
}
