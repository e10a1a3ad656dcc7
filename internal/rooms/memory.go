package rooms

import (
	"context"
	"fmt"
	"math/rand/v2"

	"bottoms-up/internal/db"
)

const memoryBoardSize = 12

// seedMemoryChain deals the shared board and the hidden sequence the table
// has to reproduce. Called once at room creation.
func seedMemoryChain(room *db.Room, game *db.Game) {
	pool := make([]int, 0, len(game.Questions))
	for _, q := range game.Questions {
		pool = append(pool, int(q.ID))
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > memoryBoardSize {
		pool = pool[:memoryBoardSize]
	}

	sequence := append([]int(nil), pool...)
	rand.Shuffle(len(sequence), func(i, j int) { sequence[i], sequence[j] = sequence[j], sequence[i] })

	state := defaultMemoryChainState()
	state.Board = pool
	state.Sequence = sequence
	room.VariantState = encodeState(state)
}

// MemoryChainGuess checks one card against the next position in the
// sequence. A hit advances progress and keeps the turn; a miss parks the
// wrong card and the next player until the table acknowledges. Progress
// never moves backwards.
func (s *Service) MemoryChainGuess(ctx context.Context, roomID, playerID string, cardID int) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeMemoryChain); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, playerID); err != nil {
			return nil, err
		}
		if room.CurrentTurn != playerID {
			return nil, fmt.Errorf("%w: not your turn", ErrInvalidState)
		}
		state := decodeMemoryChainState(room.VariantState)
		if state.Status != StatusPlaying {
			return nil, fmt.Errorf("%w: game not in play", ErrInvalidState)
		}
		if state.PendingMissQuestionID != nil {
			return nil, fmt.Errorf("%w: waiting for next-player acknowledgement", ErrInvalidState)
		}
		if state.Progress >= len(state.Sequence) {
			return nil, fmt.Errorf("%w: sequence complete", ErrInvalidState)
		}

		onBoard := false
		for _, card := range state.Board {
			if card == cardID {
				onBoard = true
				break
			}
		}
		if !onBoard {
			return nil, fmt.Errorf("%w: card not on the board", ErrValidation)
		}

		if cardID == state.Sequence[state.Progress] {
			state.Progress++
			state.Revealed = append(state.Revealed, cardID)
			if state.Progress == len(state.Sequence) {
				state.Status = StatusEnded
				state.WinnerPlayerID = &playerID
				s.endRoomNow(room)
			}
			room.VariantState = encodeState(state)
			return nil, nil
		}

		// Miss: show the wrong card and line up the next player, but hold
		// the turn until the table acknowledges.
		next, previous := nextTurn(playerIDs(room), room.PreviousTurns, room.CurrentTurn)
		room.PreviousTurns = previous
		state.PendingMissQuestionID = &cardID
		state.PendingMissNextPlayerID = &next
		room.VariantState = encodeState(state)
		return nil, nil
	})
}

// MemoryChainNext acknowledges a miss and passes the turn to the player
// lined up when the miss happened.
func (s *Service) MemoryChainNext(ctx context.Context, roomID, playerID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeMemoryChain); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, playerID); err != nil {
			return nil, err
		}
		state := decodeMemoryChainState(room.VariantState)
		if state.PendingMissQuestionID == nil || state.PendingMissNextPlayerID == nil {
			return nil, fmt.Errorf("%w: no miss to acknowledge", ErrInvalidState)
		}
		room.CurrentTurn = *state.PendingMissNextPlayerID
		state.PendingMissQuestionID = nil
		state.PendingMissNextPlayerID = nil
		room.VariantState = encodeState(state)
		return nil, nil
	})
}
