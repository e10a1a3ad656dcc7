package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// WouldYouRatherVote collects A/B ballots from every player. The last
// ballot triggers the tally: equal nonzero counts mean everyone drinks,
// otherwise the minority drinks and the majority scores.
func (s *Service) WouldYouRatherVote(ctx context.Context, roomID, voterID, choice string) (*db.Room, error) {
	if choice != ChoiceA && choice != ChoiceB {
		return nil, fmt.Errorf("%w: choice must be A or B", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeWouldYouRather); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, voterID); err != nil {
			return nil, err
		}
		if containsString(room.VotesA, voterID) || containsString(room.VotesB, voterID) {
			return nil, fmt.Errorf("%w: already voted", ErrInvalidState)
		}

		if choice == ChoiceA {
			room.VotesA = append(room.VotesA, voterID)
		} else {
			room.VotesB = append(room.VotesB, voterID)
		}

		if len(room.VotesA)+len(room.VotesB) < len(room.Players) {
			return nil, nil
		}
		return scoreWouldYouRather(room), nil
	})
}

func scoreWouldYouRather(room *db.Room) []db.Player {
	countA := len(room.VotesA)
	countB := len(room.VotesB)

	touched := make([]db.Player, 0, len(room.Players))
	apply := func(ids []string, points, drinks int) {
		for i := range room.Players {
			player := &room.Players[i]
			if !containsString(ids, player.ID) {
				continue
			}
			player.Points += points
			player.Drinks += drinks
			touched = append(touched, *player)
		}
	}

	switch {
	case countA == countB && countA > 0:
		apply(room.VotesA, 0, 1)
		apply(room.VotesB, 0, 1)
	case countA < countB:
		apply(room.VotesA, 0, 1)
		apply(room.VotesB, 1, 0)
	case countB < countA:
		apply(room.VotesB, 0, 1)
		apply(room.VotesA, 1, 0)
	}
	return touched
}
