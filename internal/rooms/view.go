package rooms

import (
	"context"
	"errors"
	"sort"
	"time"

	"bottoms-up/internal/db"
)

type PlayerView struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Points int     `json:"points"`
	Drinks int     `json:"drinks"`
	Team   *string `json:"team,omitempty"`
}

type QuestionView struct {
	ID      uint    `json:"id"`
	Text    string  `json:"text"`
	Answer  *string `json:"answer,omitempty"`
	Edition *int    `json:"edition,omitempty"`
}

type GameView struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoomView is the payload clients poll every few seconds while the game is
// open.
type RoomView struct {
	ID   string   `json:"id"`
	Game GameView `json:"game"`

	Players    []PlayerView `json:"players"`
	Scoreboard []PlayerView `json:"scoreboard"`

	CurrentTurnKind string `json:"current_turn_kind"`
	CurrentTurn     string `json:"current_turn"`
	PlayerOneID     string `json:"player_one_id,omitempty"`
	PlayerTwoID     string `json:"player_two_id,omitempty"`
	PlayingTeams    []string `json:"playing_teams,omitempty"`

	CurrentQuestion *QuestionView `json:"current_question,omitempty"`
	Rounds          int           `json:"rounds"`
	CurrentRound    int           `json:"current_round"`

	CurrentAnswer *string  `json:"current_answer,omitempty"`
	VotesA        []string `json:"votes_a"`
	VotesB        []string `json:"votes_b"`

	CurrentCard       *int    `json:"current_card,omitempty"`
	LastCard          *int    `json:"last_card,omitempty"`
	LastPlayerID      string  `json:"last_player_id,omitempty"`
	CorrectPrediction *bool   `json:"correct_prediction,omitempty"`

	Codenames   *CodenamesState   `json:"codenames,omitempty"`
	MemoryChain *MemoryChainState `json:"memory_chain,omitempty"`

	GameEnded   bool       `json:"game_ended"`
	GameEndedAt *time.Time `json:"game_ended_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RoomState builds the polling projection for one room.
func (s *Service) RoomState(ctx context.Context, roomID string) (*RoomView, error) {
	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	game, err := s.repo.GetGameByID(ctx, room.GameID)
	if err != nil {
		return nil, err
	}
	return buildRoomView(room, game), nil
}

func buildRoomView(room *db.Room, game *db.Game) *RoomView {
	view := &RoomView{
		ID: room.ID,
		Game: GameView{
			Code:        game.Code,
			Name:        game.Name,
			Description: game.Description,
		},
		PlayerOneID:       room.PlayerOneID,
		PlayerTwoID:       room.PlayerTwoID,
		PlayingTeams:      room.PlayingTeams,
		Rounds:            room.Rounds,
		CurrentRound:      room.CurrentRound,
		CurrentAnswer:     room.CurrentAnswer,
		VotesA:            room.VotesA,
		VotesB:            room.VotesB,
		CurrentCard:       room.CurrentCard,
		LastCard:          room.LastCard,
		LastPlayerID:      room.LastPlayerID,
		CorrectPrediction: room.CorrectPrediction,
		GameEnded:         room.GameEnded,
		GameEndedAt:       room.GameEndedAt,
		CreatedAt:         room.CreatedAt,
	}
	if view.VotesA == nil {
		view.VotesA = []string{}
	}
	if view.VotesB == nil {
		view.VotesB = []string{}
	}

	owner := turnOwner(game.Code, room.CurrentTurn)
	view.CurrentTurnKind = owner.Kind.String()
	view.CurrentTurn = owner.Key

	for _, p := range room.Players {
		view.Players = append(view.Players, PlayerView{
			ID:     p.ID,
			Name:   p.Name,
			Points: p.Points,
			Drinks: p.Drinks,
			Team:   p.Team,
		})
	}
	view.Scoreboard = append([]PlayerView(nil), view.Players...)
	sort.SliceStable(view.Scoreboard, func(i, j int) bool {
		return view.Scoreboard[i].Points > view.Scoreboard[j].Points
	})

	if room.CurrentQuestionID != nil {
		for _, q := range game.Questions {
			if q.ID == *room.CurrentQuestionID {
				view.CurrentQuestion = &QuestionView{
					ID:      q.ID,
					Text:    q.Text,
					Answer:  q.Answer,
					Edition: q.Edition,
				}
				break
			}
		}
	}

	switch game.Code {
	case CodeCodenames:
		state := decodeCodenamesState(room.VariantState)
		view.Codenames = &state
	case CodeMemoryChain:
		state := decodeMemoryChainState(room.VariantState)
		view.MemoryChain = &state
	}
	return view
}

// Catalog lists the playable games.
func (s *Service) Catalog(ctx context.Context) ([]GameView, error) {
	games, err := s.repo.ListOfferedGames(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]GameView, 0, len(games))
	for _, game := range games {
		views = append(views, GameView{
			Code:        game.Code,
			Name:        game.Name,
			Description: game.Description,
		})
	}
	return views, nil
}

// Editions lists the edition parameters a game's questions carry.
func (s *Service) Editions(ctx context.Context, gameCode string) ([]int, error) {
	editions, err := s.repo.ListEditions(ctx, gameCode)
	if err != nil {
		if errors.Is(err, db.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	if editions == nil {
		editions = []int{}
	}
	return editions, nil
}
