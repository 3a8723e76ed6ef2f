package ports

import "agoraverse/internal/domain/econ"

type TickMetrics interface {
	RecordIntent(status econ.IntentStatus)
	RecordSkillSkip(skill string)
	RecordSkillTruncation(skill string, dropped int)
	RecordAgentDefect(agentID string)
	RecordFreeze(reason econ.FreezeReason)
	RecordRevival()
}
