package model

// Param is a governance-tunable setting. Effective values are height-scoped:
// overrides from accepted votes live in the param change log, and the
// compiled-in defaults below apply where no override matches.
type Param string

const (
	ParamUndefined Param = "UNDEFINED"

	// Fees are denominated in BSQ satoshis.
	ParamProposalFee  Param = "PROPOSAL_FEE"
	ParamBlindVoteFee Param = "BLIND_VOTE_FEE"

	// Quorums are the minimum BSQ stake plus merit required for a vote
	// result to be valid, thresholds the required percentage of acceptance
	// in basis points.
	ParamQuorumProposal        Param = "QUORUM_PROPOSAL"
	ParamThresholdProposal     Param = "THRESHOLD_PROPOSAL"
	ParamQuorumCompRequest     Param = "QUORUM_COMP_REQUEST"
	ParamThresholdCompRequest  Param = "THRESHOLD_COMP_REQUEST"
	ParamQuorumConfiscation    Param = "QUORUM_CONFISCATION"
	ParamThresholdConfiscation Param = "THRESHOLD_CONFISCATION"

	// Phase durations in blocks within one voting cycle.
	ParamPhaseProposal   Param = "PHASE_PROPOSAL"
	ParamPhaseBlindVote  Param = "PHASE_BLIND_VOTE"
	ParamPhaseVoteReveal Param = "PHASE_VOTE_REVEAL"
	ParamPhaseResult     Param = "PHASE_RESULT"
)

var paramDefaults = map[Param]int64{
	ParamProposalFee:           200,
	ParamBlindVoteFee:          200,
	ParamQuorumProposal:        10_000_00,
	ParamThresholdProposal:     5_000,
	ParamQuorumCompRequest:     10_000_00,
	ParamThresholdCompRequest:  5_000,
	ParamQuorumConfiscation:    20_000_00,
	ParamThresholdConfiscation: 8_500,
	ParamPhaseProposal:         24,
	ParamPhaseBlindVote:        24,
	ParamPhaseVoteReveal:       24,
	ParamPhaseResult:           10,
}

// DefaultValue returns the compiled-in default of the param, 0 for unknown
// params.
func (p Param) DefaultValue() int64 {
	return paramDefaults[p]
}
