package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// TriviyayOutcome settles a team question: the moderator names zero or
// more winning teams, or forfeits. Winning teams' players score; every
// team that neither won nor held the turn drinks.
func (s *Service) TriviyayOutcome(ctx context.Context, roomID, actorID string, winners []string, forfeit bool) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeTriviyay); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, actorID); err != nil {
			return nil, err
		}
		if !forfeit && len(winners) == 0 {
			return nil, fmt.Errorf("%w: name winners or forfeit", ErrValidation)
		}
		for _, team := range winners {
			if !containsString(room.PlayingTeams, team) {
				return nil, fmt.Errorf("%w: unknown team %q", ErrValidation, team)
			}
		}

		currentTeam := room.CurrentTurn
		touched := make([]db.Player, 0, len(room.Players))
		for i := range room.Players {
			player := &room.Players[i]
			if player.Team == nil {
				continue
			}
			switch {
			case containsString(winners, *player.Team):
				player.Points++
				touched = append(touched, *player)
			case *player.Team != currentTeam:
				player.Drinks++
				touched = append(touched, *player)
			}
		}

		s.advanceTurn(room, game)
		s.advanceQuestion(room, game)
		return touched, nil
	})
}
