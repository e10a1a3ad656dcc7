package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// PairOutcome settles a charades/taboo card: both members of the active
// pair score on CORRECT and both drink on INCORRECT, then the pair and the
// card rotate. Timing is the client's problem; the server only sees the
// verdict.
func (s *Service) PairOutcome(ctx context.Context, roomID, actorID, outcome string) (*db.Room, error) {
	if outcome != OutcomeCorrect && outcome != OutcomeIncorrect {
		return nil, fmt.Errorf("%w: outcome must be CORRECT or INCORRECT", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeVerbalCharades, CodeTaboo); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, actorID); err != nil {
			return nil, err
		}

		touched := make([]db.Player, 0, 2)
		for _, id := range []string{room.PlayerOneID, room.PlayerTwoID} {
			member, err := requireMember(room, id)
			if err != nil {
				return nil, fmt.Errorf("%w: active pair is stale", ErrInvalidState)
			}
			if outcome == OutcomeCorrect {
				member.Points++
			} else {
				member.Drinks++
			}
			touched = append(touched, *member)
		}

		s.advancePair(room)
		s.advanceQuestion(room, game)
		return touched, nil
	})
}

// SoloOutcome settles a catherines-special card for the current player
// alone, same verdict rule as the pair games.
func (s *Service) SoloOutcome(ctx context.Context, roomID, playerID, outcome string) (*db.Room, error) {
	if outcome != OutcomeCorrect && outcome != OutcomeIncorrect {
		return nil, fmt.Errorf("%w: outcome must be CORRECT or INCORRECT", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeCatherinesSpecial); err != nil {
			return nil, err
		}
		player, err := requireMember(room, playerID)
		if err != nil {
			return nil, err
		}
		if room.CurrentTurn != playerID {
			return nil, fmt.Errorf("%w: not %s's turn", ErrInvalidState, player.Name)
		}

		if outcome == OutcomeCorrect {
			player.Points++
		} else {
			player.Drinks++
		}
		s.advanceTurn(room, game)
		s.advanceQuestion(room, game)
		return []db.Player{*player}, nil
	})
}
