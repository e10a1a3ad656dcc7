package rooms

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"bottoms-up/internal/db"
)

// Repository is the persistence surface the room engine needs. Single
// record writes are atomic; sequences of calls are not.
type Repository interface {
	GetRoom(ctx context.Context, id string) (*db.Room, error)
	CreateRoom(ctx context.Context, room *db.Room) error
	UpdateRoom(ctx context.Context, room *db.Room) error
	CloseRoom(ctx context.Context, id string, endedAt time.Time) error
	ListOpenRoomsBefore(ctx context.Context, cutoff time.Time) ([]db.Room, error)

	CreatePlayer(ctx context.Context, player *db.Player) error
	SavePlayers(ctx context.Context, players []db.Player) error

	GetGameByID(ctx context.Context, id uint) (*db.Game, error)
	GetGameByCode(ctx context.Context, code string) (*db.Game, error)
	ListOfferedGames(ctx context.Context) ([]db.Game, error)
	ListEditions(ctx context.Context, gameCode string) ([]int, error)

	LatestTransaction(ctx context.Context, userID string) (*db.Transaction, error)
	CreateTransaction(ctx context.Context, txn *db.Transaction) error
	SaveTransaction(ctx context.Context, txn *db.Transaction) error
}

// Service drives every room mutation: rotation, variant state machines and
// lifecycle. Handlers hold one Service for the process.
type Service struct {
	repo     Repository
	log      zerolog.Logger
	roomTTL  time.Duration
	deckSize int
	now      func() time.Time
}

func NewService(repo Repository, log zerolog.Logger, roomTTL time.Duration, deckSize int) *Service {
	if roomTTL <= 0 {
		roomTTL = 2 * time.Hour
	}
	if deckSize <= 0 {
		deckSize = 1000
	}
	return &Service{
		repo:     repo,
		log:      log,
		roomTTL:  roomTTL,
		deckSize: deckSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

const maxUpdateAttempts = 3

// updateRoom loads the room and its game, applies the mutation and
// persists the room conditionally on the version it read. On contention it
// re-reads and re-applies, so a losing writer recomputes against fresh
// state instead of clobbering the winner. Touched players are written after
// the room commit; those writes are best-effort.
func (s *Service) updateRoom(ctx context.Context, roomID string, fn func(room *db.Room, game *db.Game) ([]db.Player, error)) (*db.Room, error) {
	var lastErr error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		room, err := s.getRoom(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if room.GameEnded {
			return nil, ErrGameEnded
		}
		game, err := s.repo.GetGameByID(ctx, room.GameID)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				return nil, ErrGameNotFound
			}
			return nil, err
		}

		touched, err := fn(room, game)
		if err != nil {
			return nil, err
		}

		room.UpdatedAt = s.now()
		if err := s.repo.UpdateRoom(ctx, room); err != nil {
			if errors.Is(err, db.ErrVersionConflict) {
				lastErr = err
				continue
			}
			return nil, err
		}

		if len(touched) > 0 {
			if err := s.repo.SavePlayers(ctx, touched); err != nil {
				s.log.Error().Err(err).Str("room_id", roomID).Msg("player score write failed after room update")
			}
		}
		return room, nil
	}
	return nil, fmt.Errorf("room update contended: %w", lastErr)
}

func (s *Service) getRoom(ctx context.Context, roomID string) (*db.Room, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, db.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// requireMember fails with ErrForbidden unless the claimed player id is in
// the room. Every mutation that names an actor goes through here.
func requireMember(room *db.Room, playerID string) (*db.Player, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: missing player id", ErrForbidden)
	}
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			return &room.Players[i], nil
		}
	}
	return nil, ErrForbidden
}

func playerIDs(room *db.Room) []string {
	ids := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

func questionRefs(game *db.Game) []questionRef {
	refs := make([]questionRef, 0, len(game.Questions))
	for _, q := range game.Questions {
		refs = append(refs, questionRef{ID: q.ID, Edition: q.Edition})
	}
	return refs
}

// poolFor returns the question-id pool a variant draws from. Truth-or-drink
// narrows to the edition selected at creation (stored in Rounds); an empty
// edition falls back to the full pool.
func poolFor(room *db.Room, game *db.Game) []uint {
	edition := 0
	if game.Code == CodeTruthOrDrink {
		edition = room.Rounds
	}
	return questionPool(questionRefs(game), edition)
}

func clearVotes(room *db.Room) {
	room.VotesA = nil
	room.VotesB = nil
	room.CurrentAnswer = nil
}

// advanceTurn rotates whoever owns the turn: players for most variants,
// team names for triviyay, a pure random player for imposter.
func (s *Service) advanceTurn(room *db.Room, game *db.Game) {
	if game.Code == CodeImposter {
		ids := playerIDs(room)
		if len(ids) > 0 {
			room.CurrentTurn = ids[rand.IntN(len(ids))]
		}
		return
	}

	var candidates []string
	if turnKindFor(game.Code) == TurnTeam {
		candidates = room.PlayingTeams
	} else {
		candidates = playerIDs(room)
	}
	next, previous := nextTurn(candidates, room.PreviousTurns, room.CurrentTurn)
	room.CurrentTurn = next
	room.PreviousTurns = previous
	if turnKindFor(game.Code) == TurnTeam {
		room.PreviousPlayedTeams = previous
	}
}

// advanceQuestion draws the next question and clears the per-question vote
// and answer state.
func (s *Service) advanceQuestion(room *db.Room, game *db.Game) {
	pool := poolFor(room, game)
	next, previous := nextQuestion(pool, room.PreviousQuestionIDs, room.CurrentQuestionID)
	room.CurrentQuestionID = next
	room.PreviousQuestionIDs = previous
	clearVotes(room)
}

// advancePair rotates the active pair for the two-participant variants.
func (s *Service) advancePair(room *db.Room) {
	key, previous := nextPair(room.AllPairIDs, room.PreviousPairIDs)
	room.PreviousPairIDs = previous
	if one, two, ok := pairMembers(key); ok {
		room.PlayerOneID = one
		room.PlayerTwoID = two
	}
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func removeString(list []string, value string) []string {
	out := list[:0]
	for _, item := range list {
		if item != value {
			out = append(out, item)
		}
	}
	return out
}
