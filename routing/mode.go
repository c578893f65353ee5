package routing

import (
	"encoding/json"

	"github.com/pkg/errors"
)

//*******************************************
// planner modes
//*******************************************

type Mode byte

const (
	// SHORTEST terminates as soon as the target is reached and returns the
	// reconstructed path.
	SHORTEST Mode = 0
	// FRONTIER never returns a path, it exposes the coordinates of every
	// node the search assigned an f-score to, for diagnostic rendering of
	// the explored region.
	FRONTIER Mode = 1
)

func (self Mode) String() string {
	switch self {
	case SHORTEST:
		return "shortest"
	case FRONTIER:
		return "frontier"
	default:
		panic("unknown planner mode")
	}
}
func (self Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Mode) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	mode, err := ModeFromString(typ)
	*self = mode
	return err
}

func ModeFromString(s string) (Mode, error) {
	switch s {
	case "shortest":
		return SHORTEST, nil
	case "frontier":
		return FRONTIER, nil
	default:
		return SHORTEST, errors.Errorf("unknown planner mode %v", s)
	}
}
