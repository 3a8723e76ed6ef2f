package tick

import "agoraverse/internal/domain/econ"

// selectCandidate picks one winner from an agent's candidate set: highest
// priority, ties broken by kind then by skill name so replays pick the same
// intent regardless of registry append order.
func selectCandidate(candidates []econ.Candidate) (econ.Candidate, bool) {
	if len(candidates) == 0 {
		return econ.Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if beats(c, best) {
			best = c
		}
	}
	return best, true
}

func beats(a, b econ.Candidate) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Skill < b.Skill
}
