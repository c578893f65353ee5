package util

//*******************************************
// dict
//*******************************************

type Dict[K comparable, V any] map[K]V

func NewDict[K comparable, V any](cap int) Dict[K, V] {
	return make(map[K]V, cap)
}

func (self Dict[K, V]) ContainsKey(key K) bool {
	_, ok := self[key]
	return ok
}

func (self Dict[K, V]) Get(key K) V {
	return self[key]
}

func (self Dict[K, V]) Set(key K, value V) {
	self[key] = value
}

func (self Dict[K, V]) Delete(key K) {
	delete(self, key)
}

func (self Dict[K, V]) Length() int {
	return len(self)
}
