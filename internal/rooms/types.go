package rooms

// Catalog game codes. The code on a room's game selects which state
// machine interprets its fields.
const (
	CodeNeverHaveIEver    = "never-have-i-ever"
	CodeTruthOrDrink      = "truth-or-drink"
	CodeHigherLower       = "higher-lower"
	CodeMostLikely        = "most-likely"
	CodeParanoia          = "paranoia"
	CodeVerbalCharades    = "verbal-charades"
	CodeTaboo             = "taboo"
	CodeCatherinesSpecial = "catherines-special"
	CodeWouldYouRather    = "would-you-rather"
	CodeTruthOrLie        = "truth-or-lie"
	CodePickACard         = "pick-a-card"
	CodeKingsCup          = "kings-cup"
	CodeImposter          = "imposter"
	CodeTriviyay          = "triviyay"
	CodeCodenames         = "codenames"
	CodeMemoryChain       = "memory-chain"
)

const (
	OutcomeCorrect   = "CORRECT"
	OutcomeIncorrect = "INCORRECT"

	GuessUp   = "UP"
	GuessDown = "DOWN"

	ChoiceA = "A"
	ChoiceB = "B"

	VoteTruth = "TRUTH"
	VoteLie   = "LIE"
)

// TurnKind distinguishes the interpretation of a room's current turn key.
type TurnKind int

const (
	TurnPlayer TurnKind = iota
	TurnTeam
)

// TurnOwner is the unit the rotation advances: a player for most variants,
// a team for triviyay.
type TurnOwner struct {
	Kind TurnKind
	Key  string
}

func PlayerTurn(id string) TurnOwner { return TurnOwner{Kind: TurnPlayer, Key: id} }
func TeamTurn(name string) TurnOwner { return TurnOwner{Kind: TurnTeam, Key: name} }

func (k TurnKind) String() string {
	if k == TurnTeam {
		return "team"
	}
	return "player"
}

// turnOwner wraps a room's current turn key with how the variant reads it.
// Codenames stores a team name even though its rotation is board-driven.
func turnOwner(code, key string) TurnOwner {
	if turnKindFor(code) == TurnTeam || code == CodeCodenames {
		return TeamTurn(key)
	}
	return PlayerTurn(key)
}

// turnKindFor reports how a variant interprets the current turn column.
func turnKindFor(code string) TurnKind {
	if code == CodeTriviyay {
		return TurnTeam
	}
	return TurnPlayer
}

// pairBased reports whether a variant rotates over player pairs instead of
// single players.
func pairBased(code string) bool {
	return code == CodeVerbalCharades || code == CodeTaboo
}

// teamBased reports whether room creation takes teams instead of a flat
// player list.
func teamBased(code string) bool {
	return code == CodeTriviyay || code == CodeCodenames
}
