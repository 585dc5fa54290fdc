package state

import (
	"sort"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
)

// SetNewParam schedules a parameter override to activate at the start of the
// cycle following the one containing blockHeight. When the containing cycle
// cannot be resolved no activation height exists and the call is a no-op.
func (s *State) SetNewParam(blockHeight int32, param model.Param, value int64) {
	activationHeight, ok := s.StartHeightOfNextCycle(blockHeight)
	if !ok {
		return
	}
	s.ParamChanges = append(s.ParamChanges, model.ParamChange{
		ParamName:        string(param),
		Value:            value,
		ActivationHeight: activationHeight,
	})
	// Insertion with an older height should not happen, but sorting after
	// every append keeps the ascending-order invariant unconditional.
	sort.SliceStable(s.ParamChanges, func(i, j int) bool {
		return s.ParamChanges[i].ActivationHeight < s.ParamChanges[j].ActivationHeight
	})
}

// ParamValue returns the value of param effective at blockHeight: the most
// recent override whose activation height is not above blockHeight, falling
// back to the compiled-in default.
func (s *State) ParamValue(param model.Param, blockHeight int32) int64 {
	for i := len(s.ParamChanges) - 1; i >= 0; i-- {
		change := s.ParamChanges[i]
		if change.ParamName == string(param) && blockHeight >= change.ActivationHeight {
			return change.Value
		}
	}
	return param.DefaultValue()
}
