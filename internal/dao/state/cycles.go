package state

import "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"

// CurrentCycle returns the last known voting cycle.
func (s *State) CurrentCycle() (model.Cycle, bool) {
	if len(s.Cycles) == 0 {
		return model.Cycle{}, false
	}
	return s.Cycles[len(s.Cycles)-1], true
}

// Cycle returns the cycle containing the given height. Heights beyond the
// last known cycle resolve to absent, never to the last cycle.
func (s *State) Cycle(height int32) (model.Cycle, bool) {
	for _, c := range s.Cycles {
		if c.Contains(height) {
			return c, true
		}
	}
	return model.Cycle{}, false
}

// StartHeightOfNextCycle returns the first height of the cycle following the
// one containing blockHeight.
func (s *State) StartHeightOfNextCycle(blockHeight int32) (int32, bool) {
	c, ok := s.Cycle(blockHeight)
	if !ok {
		return 0, false
	}
	return c.HeightOfLastBlock + 1, true
}
