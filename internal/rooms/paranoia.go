package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// ParanoiaVote collects an anonymous nominee ballot from everyone except
// the player in the hot seat. Ballots are a nominee multiset; voting close
// is the count reaching players-1.
func (s *Service) ParanoiaVote(ctx context.Context, roomID, voterID, nomineeID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeParanoia); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, voterID); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, nomineeID); err != nil {
			return nil, fmt.Errorf("%w: nominee not in room", ErrValidation)
		}
		if voterID == room.CurrentTurn {
			return nil, fmt.Errorf("%w: the hot seat does not vote", ErrInvalidState)
		}
		if len(room.VotesA) >= len(room.Players)-1 {
			return nil, fmt.Errorf("%w: voting closed", ErrInvalidState)
		}
		room.VotesA = append(room.VotesA, nomineeID)
		return nil, nil
	})
}

// ParanoiaReveal lets the hot seat publish which nominee they picked. Gated
// until every other player has voted.
func (s *Service) ParanoiaReveal(ctx context.Context, roomID, playerID, revealedID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeParanoia); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, playerID); err != nil {
			return nil, err
		}
		if playerID != room.CurrentTurn {
			return nil, fmt.Errorf("%w: only the hot seat reveals", ErrForbidden)
		}
		if len(room.VotesA) < len(room.Players)-1 {
			return nil, fmt.Errorf("%w: votes still outstanding", ErrInvalidState)
		}
		if _, err := requireMember(room, revealedID); err != nil {
			return nil, fmt.Errorf("%w: revealed player not in room", ErrValidation)
		}
		room.CurrentAnswer = &revealedID
		return nil, nil
	})
}

// ParanoiaGuess records an observer's guess at who the hot seat picked,
// tallied as a player-id multiset until the reveal.
func (s *Service) ParanoiaGuess(ctx context.Context, roomID, guesserID, guessedID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeParanoia); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, guesserID); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, guessedID); err != nil {
			return nil, fmt.Errorf("%w: guessed player not in room", ErrValidation)
		}
		if room.CurrentAnswer != nil {
			return nil, fmt.Errorf("%w: already revealed", ErrInvalidState)
		}
		room.VotesB = append(room.VotesB, guessedID)
		return nil, nil
	})
}
