package rooms

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"bottoms-up/internal/db"
)

const (
	codenamesBoardSize  = 25
	codenamesFirstCards = 9
	codenamesOtherCards = 8
)

func otherTeam(team string) string {
	if team == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// CodenamesStart deals the board: 25 cards drawn from the question pool,
// 9 for the starting team, 8 for the other, 7 neutral and the assassin.
func (s *Service) CodenamesStart(ctx context.Context, roomID, actorID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeCodenames); err != nil {
			return nil, err
		}
		if _, err := requireMember(room, actorID); err != nil {
			return nil, err
		}
		state := decodeCodenamesState(room.VariantState)
		if state.Status != StatusLobby {
			return nil, fmt.Errorf("%w: board already dealt", ErrInvalidState)
		}
		if len(game.Questions) < codenamesBoardSize {
			return nil, fmt.Errorf("%w: need %d cards, deck has %d", ErrInvalidState, codenamesBoardSize, len(game.Questions))
		}

		pool := make([]int, 0, len(game.Questions))
		for _, q := range game.Questions {
			pool = append(pool, int(q.ID))
		}
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		board := pool[:codenamesBoardSize]

		starting := TeamRed
		if rand.IntN(2) == 1 {
			starting = TeamBlue
		}

		assignments := make(map[string]string, codenamesBoardSize)
		for i, card := range board {
			key := strconv.Itoa(card)
			switch {
			case i < codenamesFirstCards:
				assignments[key] = starting
			case i < codenamesFirstCards+codenamesOtherCards:
				assignments[key] = otherTeam(starting)
			case i < codenamesBoardSize-1:
				assignments[key] = CardNeutral
			default:
				assignments[key] = CardAssassin
			}
		}

		// Hidden cards are shuffled again so board order leaks nothing
		// about the deal.
		hidden := append([]int(nil), board...)
		rand.Shuffle(len(hidden), func(i, j int) { hidden[i], hidden[j] = hidden[j], hidden[i] })

		state = CodenamesState{
			Status:       StatusPlaying,
			Board:        hidden,
			Assignments:  assignments,
			StartingTeam: starting,
			TurnTeam:     starting,
		}
		room.VariantState = encodeState(state)
		room.CurrentTurn = starting
		return nil, nil
	})
}

// CodenamesClue sets the guess budget for the team holding the turn.
func (s *Service) CodenamesClue(ctx context.Context, roomID, playerID string, guesses int) (*db.Room, error) {
	if guesses < 1 {
		return nil, fmt.Errorf("%w: guesses must be at least 1", ErrValidation)
	}
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeCodenames); err != nil {
			return nil, err
		}
		player, err := requireMember(room, playerID)
		if err != nil {
			return nil, err
		}
		state := decodeCodenamesState(room.VariantState)
		if state.Status != StatusPlaying {
			return nil, fmt.Errorf("%w: game not in play", ErrInvalidState)
		}
		if player.Team == nil || *player.Team != state.TurnTeam {
			return nil, fmt.Errorf("%w: not your team's turn", ErrForbidden)
		}
		state.GuessesRemaining = &guesses
		room.VariantState = encodeState(state)
		return nil, nil
	})
}

// CodenamesGuess reveals one card. Own-color cards keep the turn going and
// burn a guess; anything else ends the turn, and the assassin ends the
// game for the guessing team.
func (s *Service) CodenamesGuess(ctx context.Context, roomID, playerID string, cardID int) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeCodenames); err != nil {
			return nil, err
		}
		player, err := requireMember(room, playerID)
		if err != nil {
			return nil, err
		}
		state := decodeCodenamesState(room.VariantState)
		if state.Status != StatusPlaying {
			return nil, fmt.Errorf("%w: game not in play", ErrInvalidState)
		}
		if player.Team == nil || *player.Team != state.TurnTeam {
			return nil, fmt.Errorf("%w: not your team's turn", ErrForbidden)
		}

		hidden := false
		for _, card := range state.Board {
			if card == cardID {
				hidden = true
				break
			}
		}
		if !hidden {
			return nil, fmt.Errorf("%w: card already revealed", ErrInvalidState)
		}

		assignment, ok := state.Assignments[strconv.Itoa(cardID)]
		if !ok {
			return nil, fmt.Errorf("%w: card not on the board", ErrValidation)
		}

		remaining := make([]int, 0, len(state.Board)-1)
		for _, card := range state.Board {
			if card != cardID {
				remaining = append(remaining, card)
			}
		}
		state.Board = remaining

		switch assignment {
		case CardAssassin:
			winner := otherTeam(state.TurnTeam)
			state.Status = StatusEnded
			state.Winner = &winner
			state.GuessesRemaining = nil
			s.endRoomNow(room)
		case state.TurnTeam:
			if winner, done := codenamesWinner(state); done {
				state.Status = StatusEnded
				state.Winner = &winner
				state.GuessesRemaining = nil
				s.endRoomNow(room)
				break
			}
			if state.GuessesRemaining != nil {
				left := *state.GuessesRemaining - 1
				if left <= 0 {
					codenamesPassTurn(&state, room)
				} else {
					state.GuessesRemaining = &left
				}
			}
		default:
			// Opposing or neutral card: turn over. Revealing the
			// opponents' last card hands them the win.
			if winner, done := codenamesWinner(state); done {
				state.Status = StatusEnded
				state.Winner = &winner
				state.GuessesRemaining = nil
				s.endRoomNow(room)
				break
			}
			codenamesPassTurn(&state, room)
		}

		room.VariantState = encodeState(state)
		return nil, nil
	})
}

// CodenamesEndTurn hands the turn over voluntarily, or once the guess
// budget is spent.
func (s *Service) CodenamesEndTurn(ctx context.Context, roomID, playerID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		if err := requireCode(game, CodeCodenames); err != nil {
			return nil, err
		}
		player, err := requireMember(room, playerID)
		if err != nil {
			return nil, err
		}
		state := decodeCodenamesState(room.VariantState)
		if state.Status != StatusPlaying {
			return nil, fmt.Errorf("%w: game not in play", ErrInvalidState)
		}
		if player.Team == nil || *player.Team != state.TurnTeam {
			return nil, fmt.Errorf("%w: not your team's turn", ErrForbidden)
		}
		codenamesPassTurn(&state, room)
		room.VariantState = encodeState(state)
		return nil, nil
	})
}

// codenamesWinner reports the team with no hidden cards left, if any.
func codenamesWinner(state CodenamesState) (string, bool) {
	left := map[string]int{}
	for _, card := range state.Board {
		left[state.Assignments[strconv.Itoa(card)]]++
	}
	for _, team := range []string{TeamRed, TeamBlue} {
		if left[team] == 0 {
			return team, true
		}
	}
	return "", false
}

func codenamesPassTurn(state *CodenamesState, room *db.Room) {
	state.TurnTeam = otherTeam(state.TurnTeam)
	state.GuessesRemaining = nil
	room.CurrentTurn = state.TurnTeam
}

func (s *Service) endRoomNow(room *db.Room) {
	endedAt := s.now()
	room.GameEnded = true
	room.GameEndedAt = &endedAt
}
