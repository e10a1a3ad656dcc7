package rooms

import (
	"encoding/json"

	"gorm.io/datatypes"
)

const (
	TeamRed      = "RED"
	TeamBlue     = "BLUE"
	CardNeutral  = "NEUTRAL"
	CardAssassin = "ASSASSIN"

	StatusLobby   = "LOBBY"
	StatusPlaying = "PLAYING"
	StatusEnded   = "ENDED"
)

// CodenamesState is the board sub-state serialized into the room's variant
// column. Board holds the ids of cards still hidden; a guessed card is
// removed from it. Assignments covers every dealt card.
type CodenamesState struct {
	Status           string            `json:"status"`
	Board            []int             `json:"board"`
	Assignments      map[string]string `json:"assignments"`
	StartingTeam     string            `json:"startingTeam"`
	TurnTeam         string            `json:"turnTeam"`
	GuessesRemaining *int              `json:"guessesRemaining"`
	Winner           *string           `json:"winner"`
}

func defaultCodenamesState() CodenamesState {
	return CodenamesState{
		Status:      StatusLobby,
		Board:       []int{},
		Assignments: map[string]string{},
	}
}

// MemoryChainState is the shared-sequence sub-state. Progress only moves
// forward; a miss parks the wrong card and the computed next player until
// the table acknowledges.
type MemoryChainState struct {
	Status                  string  `json:"status"`
	Board                   []int   `json:"board"`
	Sequence                []int   `json:"sequence"`
	Revealed                []int   `json:"revealed"`
	Progress                int     `json:"progress"`
	WinnerPlayerID          *string `json:"winnerPlayerId"`
	PendingMissQuestionID   *int    `json:"pendingMissQuestionId"`
	PendingMissNextPlayerID *string `json:"pendingMissNextPlayerId"`
}

func defaultMemoryChainState() MemoryChainState {
	return MemoryChainState{
		Status:   StatusPlaying,
		Board:    []int{},
		Sequence: []int{},
		Revealed: []int{},
	}
}

/// decodeCodenamesState never fails: missing, malformed or mistyped payloads
// come back as the lobby default.
func decodeCodenamesState(raw datatypes.JSON) CodenamesState {
	if len(raw) == 0 {
		return defaultCodenamesState()
	}
	var state CodenamesState
	if err := json.Unmarshal(raw, &state); err != nil {
		return defaultCodenamesState()
	}
	switch state.Status {
	case StatusLobby, StatusPlaying, StatusEnded:
	default:
		return defaultCodenamesState()
	}
	if state.Board == nil {
		state.Board = []int{}
	}
	if state.Assignments == nil {
		state.Assignments = map[string]string{}
	}
	return state
}

// decodeMemoryChainState never fails: missing, malformed or mistyped
// payloads come back as the playing default.
func decodeMemoryChainState(raw datatypes.JSON) MemoryChainState {
	if len(raw) == 0 {
		return defaultMemoryChainState()
	}
	var state MemoryChainState
	if err := json.Unmarshal(raw, &state); err != nil {
		return defaultMemoryChainState()
	}
	switch state.Status {
	case StatusPlaying, StatusEnded:
	default:
		return defaultMemoryChainState()
	}
	if state.Board == nil {
		state.Board = []int{}
	}
	if state.Sequence == nil {
		state.Sequence = []int{}
	}
	if state.Revealed == nil {
		state.Revealed = []int{}
	}
	if state.Progress < 0 {
		state.Progress = 0
	}
	return state
}

func encodeState(state any) datatypes.JSON {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
