package util

//*******************************************
// list
//*******************************************

type List[T any] []T

func NewList[T any](cap int) List[T] {
	return make([]T, 0, cap)
}

func (self *List[T]) Add(item T) {
	*self = append(*self, item)
}

func (self *List[T]) Insert(index int, item T) {
	var zero T
	*self = append(*self, zero)
	copy((*self)[index+1:], (*self)[index:])
	(*self)[index] = item
}

func (self *List[T]) Get(index int) T {
	return (*self)[index]
}

func (self *List[T]) Set(index int, item T) {
	(*self)[index] = item
}

func (self *List[T]) RemoveAt(index int) {
	*self = append((*self)[:index], (*self)[index+1:]...)
}

func (self *List[T]) Length() int {
	return len(*self)
}

//*******************************************
// array
//*******************************************

type Array[T any] []T

func NewArray[T any](size int) Array[T] {
	return make([]T, size)
}

func (self Array[T]) Get(index int) T {
	return self[index]
}

func (self Array[T]) Set(index int, item T) {
	self[index] = item
}

func (self Array[T]) Length() int {
	return len(self)
}
