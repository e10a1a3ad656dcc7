package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// TruthOrLieVote records a TRUTH/LIE ballot from anyone except the player
// answering. Re-voting before the reveal replaces the earlier ballot
// rather than erroring.
func (s *Service) TruthOrLieVote(ctx context.Context, roomID, voterID, vote string) (*db.Room, error) {
	if vote != VoteTruth && vote != VoteLie {
		return nil, fmt.Errorf("%w: vote must be TRUTH or LIE", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeTruthOrLie); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, voterID); err != nil {
			return nil, err
		}
		if voterID == room.CurrentTurn {
			return nil, fmt.Errorf("%w: the subject does not vote", ErrInvalidState)
		}
		if room.CurrentAnswer != nil {
			return nil, fmt.Errorf("%w: already revealed", ErrInvalidState)
		}

		room.VotesA = removeString(room.VotesA, voterID)
		room.VotesB = removeString(room.VotesB, voterID)
		if vote == VoteTruth {
			room.VotesA = append(room.VotesA, voterID)
		} else {
			room.VotesB = append(room.VotesB, voterID)
		}
		return nil, nil
	})
}

// TruthOrLieReveal publishes the subject's real answer and scores the
// table: matching voters gain a point, the rest drink. Gated until every
// other player has voted.
func (s *Service) TruthOrLieReveal(ctx context.Context, roomID, subjectID, answer string) (*db.Room, error) {
	if answer != VoteTruth && answer != VoteLie {
		return nil, fmt.Errorf("%w: answer must be TRUTH or LIE", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeTruthOrLie); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, subjectID); err != nil {
			return nil, err
		}
		if subjectID != room.CurrentTurn {
			return nil, fmt.Errorf("%w: only the subject reveals", ErrForbidden)
		}
		if room.CurrentAnswer != nil {
			return nil, fmt.Errorf("%w: already revealed", ErrInvalidState)
		}
		if len(room.VotesA)+len(room.VotesB) < len(room.Players)-1 {
			return nil, fmt.Errorf("%w: votes still outstanding", ErrInvalidState)
		}

		room.CurrentAnswer = &answer

		matching := room.VotesA
		missing := room.VotesB
		if answer == VoteLie {
			matching, missing = missing, matching
		}

		touched := make([]db.Player, 0, len(room.Players))
		for i := range room.Players {
			player := &room.Players[i]
			switch {
			case containsString(matching, player.ID):
				player.Points++
				touched = append(touched, *player)
			case containsString(missing, player.ID):
				player.Drinks++
				touched = append(touched, *player)
			}
		}
		return touched, nil
	})
}
