package intent

import (
	"context"

	"agoraverse/internal/domain/econ"
)

// Handler turns one chosen intent into validated, declaratively-described
// state mutations plus audit events. Implementations must validate every
// precondition before computing side effects and take any randomness from
// the supplied seed.
type Handler interface {
	Execute(ctx context.Context, uc UseCase, in *Input) (Outcome, error)
}

func handlerRegistry() map[econ.IntentKind]Handler {
	return map[econ.IntentKind]Handler{
		econ.IntentRest:             restHandler{},
		econ.IntentEat:              eatHandler{},
		econ.IntentWork:             workHandler{},
		econ.IntentSocialize:        socializeHandler{},
		econ.IntentRelax:            relaxHandler{},
		econ.IntentGamble:           gambleHandler{},
		econ.IntentFight:            fightHandler{},
		econ.IntentCommitCrime:      crimeHandler{},
		econ.IntentArrest:           arrestHandler{},
		econ.IntentVote:             voteHandler{},
		econ.IntentPostAgora:        agoraPostHandler{},
		econ.IntentTransferProperty: propertyTransferHandler{},
		econ.IntentPayRent:          payRentHandler{},
		econ.IntentFoundBusiness:    foundBusinessHandler{},
	}
}

func supportedIntentKinds() []econ.IntentKind {
	return []econ.IntentKind{
		econ.IntentRest,
		econ.IntentEat,
		econ.IntentWork,
		econ.IntentSocialize,
		econ.IntentRelax,
		econ.IntentGamble,
		econ.IntentFight,
		econ.IntentCommitCrime,
		econ.IntentArrest,
		econ.IntentVote,
		econ.IntentPostAgora,
		econ.IntentTransferProperty,
		econ.IntentPayRent,
		econ.IntentFoundBusiness,
	}
}

func isSupportedIntentKind(k econ.IntentKind) bool {
	for _, kind := range supportedIntentKinds() {
		if k == kind {
			return true
		}
	}
	return false
}
