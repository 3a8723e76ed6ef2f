package econ

// FreezeCheck evaluates the two collapse conditions against a non-frozen
// agent. Economic collapse requires an exactly-zero balance, the lowest
// housing tier, and every need at or below the collapse ceiling; health
// collapse requires health at or below zero. Economic collapse is checked
// first so an agent matching both carries the economic reason.
func FreezeCheck(state AgentState, wallet Wallet) (FreezeReason, bool) {
	if wallet.Balance == 0 && state.HousingTier == HousingStreet && state.Needs.AllAtMost(CollapseNeedCeiling) {
		return FreezeEconomic, true
	}
	if state.Needs.Health <= 0 {
		return FreezeHealth, true
	}
	return FreezeNone, false
}
