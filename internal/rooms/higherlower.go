package rooms

import (
	"context"
	"fmt"

	"bottoms-up/internal/db"
)

// SeedHigherLower draws the opening card. Called once at room creation.
func (s *Service) seedHigherLower(room *db.Room) {
	card := drawCard(nil, s.deckSize)
	if card == nil {
		return
	}
	room.CurrentCard = card
	room.LastCard = card
	room.PreviousCards = []int{*card}
}

// HigherLowerGuess draws the next card and scores the current player's
// UP/DOWN call against the card on the table.
func (s *Service) HigherLowerGuess(ctx context.Context, roomID, playerID, direction string) (*db.Room, error) {
	if direction != GuessUp && direction != GuessDown {
		return nil, fmt.Errorf("%w: direction must be UP or DOWN", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeHigherLower); err != nil {
			return nil, err
		}
		player, err := requireMember(room, playerID)
		if err != nil {
			return nil, err
		}
		if room.CurrentTurn != playerID {
			return nil, fmt.Errorf("%w: not %s's turn", ErrInvalidState, player.Name)
		}
		if room.CurrentCard == nil {
			return nil, fmt.Errorf("%w: no card on the table", ErrInvalidState)
		}

		newCard := drawCard(room.PreviousCards, s.deckSize)
		if newCard == nil {
			// Deck exhausted: nothing left to guess against.
			endedAt := s.now()
			room.GameEnded = true
			room.GameEndedAt = &endedAt
			return nil, nil
		}

		tableCard := *room.CurrentCard
		correct := (direction == GuessUp && *newCard > tableCard) ||
			(direction == GuessDown && *newCard < tableCard)
		if correct {
			player.Points++
		} else {
			player.Drinks++
		}
		room.CorrectPrediction = &correct
		room.LastCard = room.CurrentCard
		room.CurrentCard = newCard
		room.LastPlayerID = playerID
		room.PreviousCards = append(room.PreviousCards, *newCard)

		s.advanceTurn(room, game)

		// A round is every player drawing once; the opening card is not a
		// draw.
		draws := len(room.PreviousCards) - 1
		if len(room.Players) > 0 && draws%len(room.Players) == 0 {
			room.CurrentRound++
		}
		if room.Rounds > 0 && room.CurrentRound > room.Rounds {
			endedAt := s.now()
			room.GameEnded = true
			room.GameEndedAt = &endedAt
		}
		return []db.Player{*player}, nil
	})
}
