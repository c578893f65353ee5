package routing

import (
	. "github.com/mapmatch/go-pathplan/util"
)

//*******************************************
// open list
//*******************************************

type open_item struct {
	node    int32
	f_score float32
}

// open_list keeps the search frontier sorted ascending by f-score. New
// entries are spliced in before existing entries of equal score, so among
// equal scores the newest insertion pops first. The pop order is part of the
// planner's observable behavior, callers rely on it being reproducible.
type open_list struct {
	items List[open_item]
}

func new_open_list(cap int) open_list {
	return open_list{
		items: NewList[open_item](cap),
	}
}

func (self *open_list) Push(node int32, f_score float32) {
	index := self.items.Length()
	for i := 0; i < self.items.Length(); i++ {
		if self.items[i].f_score >= f_score {
			index = i
			break
		}
	}
	self.items.Insert(index, open_item{node: node, f_score: f_score})
}

func (self *open_list) Pop() (int32, bool) {
	if self.items.Length() == 0 {
		return -1, false
	}
	item := self.items.Get(0)
	self.items.RemoveAt(0)
	return item.node, true
}

func (self *open_list) Length() int {
	return self.items.Length()
}
