package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// MostLikelyVote has the current player point at whoever the question fits
// best; the target scores and the round moves on.
func (s *Service) MostLikelyVote(ctx context.Context, roomID, voterID, targetID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeMostLikely); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, voterID); err != nil {
			return nil, err
		}
		if room.CurrentTurn != voterID {
			return nil, fmt.Errorf("%w: not the voter's turn", ErrInvalidState)
		}
		target, err := requireMember(room, targetID)
		if err != nil {
			return nil, err
		}

		target.Points++
		s.advanceTurn(room, game)
		s.advanceQuestion(room, game)
		return []db.Player{*target}, nil
	})
}
