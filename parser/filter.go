package parser

import (
	. "github.com/mapmatch/go-pathplan/util"
)

//*******************************************
// way filters
//*******************************************

type IWayFilter interface {
	IsValidWay(tags Dict[string, string]) bool
}

// TaggedWayFilter keeps every way carrying at least one tag. This is the
// widest useful selection, untagged ways are geometry without meaning for
// routing or styling.
type TaggedWayFilter struct {
}

func (self *TaggedWayFilter) IsValidWay(tags Dict[string, string]) bool {
	return tags.Length() > 0
}

var pathable_types = Dict[string, bool]{"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "residential": true, "living_street": true, "service": true, "track": true,
	"unclassified": true, "road": true, "footway": true, "path": true, "cycleway": true, "pedestrian": true, "steps": true}

// PathableWayFilter keeps only highways that are walkable or cyclable.
type PathableWayFilter struct {
}

func (self *PathableWayFilter) IsValidWay(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !pathable_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	if tags.Get("access") == "private" || tags.Get("access") == "no" {
		return false
	}
	return true
}
