package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// requireCode gates an operation to the variants it belongs to.
func requireCode(game *db.Game, codes ...string) error {
	for _, code := range codes {
		if game.Code == code {
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not support this action", ErrInvalidState, game.Code)
}

// NextCard advances the shared round: next question, plus the next turn
// owner where the variant has one. Vote and reveal state always clears
// with the question. The board-game variants advance through their own
// operations.
func (s *Service) NextCard(ctx context.Context, roomID, actorID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if _, err := requireMember(room, actorID); err != nil {
			return nil, err
		}
		if game.Code == CodeCodenames || game.Code == CodeMemoryChain {
			return nil, fmt.Errorf("%w: %s advances through its own actions", ErrInvalidState, game.Code)
		}

		switch {
		case game.Code == CodeNeverHaveIEver:
			// No turn owner; only the question moves.
		case pairBased(game.Code):
			s.advancePair(room)
		default:
			s.advanceTurn(room, game)
		}
		s.advanceQuestion(room, game)
		return nil, nil
	})
}

// AddPlayerStats applies self-reported score deltas to one player and
// optionally advances the round, the truth-or-drink answer flow.
func (s *Service) AddPlayerStats(ctx context.Context, roomID, playerID string, points, drinks int, advance bool) (*db.Room, error) {
	if points < 0 || drinks < 0 {
		return nil, fmt.Errorf("%w: negative stat delta", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game,
			CodeNeverHaveIEver, CodeTruthOrDrink, CodePickACard, CodeKingsCup, CodeImposter,
		); err != nil {
			return nil, err
		}
		player, err := requireMember(room, playerID)
		if err != nil {
			return nil, err
		}

		player.Points += points
		player.Drinks += drinks

		if advance {
			s.advanceTurn(room, game)
			s.advanceQuestion(room, game)
		}
		return []db.Player{*player}, nil
	})
}
