package rooms

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"bottoms-up/internal/db"
)

// fakeRepo is an in-memory Repository with the same conflict semantics as
// the real one: UpdateRoom succeeds only against the stored version.
type fakeRepo struct {
	rooms map[string]*db.Room
	games map[uint]*db.Game
	txns  map[string][]*db.Transaction

	closed map[string]time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rooms:  map[string]*db.Room{},
		games:  map[uint]*db.Game{},
		txns:   map[string][]*db.Transaction{},
		closed: map[string]time.Time{},
	}
}

func copyRoom(room *db.Room) *db.Room {
	cp := *room
	cp.Players = append([]db.Player(nil), room.Players...)
	return &cp
}

func (f *fakeRepo) GetRoom(ctx context.Context, id string) (*db.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, db.ErrRoomNotFound
	}
	return copyRoom(room), nil
}

func (f *fakeRepo) CreateRoom(ctx context.Context, room *db.Room) error {
	f.rooms[room.ID] = copyRoom(room)
	return nil
}

func (f *fakeRepo) UpdateRoom(ctx context.Context, room *db.Room) error {
	stored, ok := f.rooms[room.ID]
	if !ok {
		return db.ErrRoomNotFound
	}
	if stored.Version != room.Version {
		return db.ErrVersionConflict
	}
	room.Version++
	cp := copyRoom(room)
	cp.Players = stored.Players
	f.rooms[room.ID] = cp
	return nil
}

func (f *fakeRepo) CloseRoom(ctx context.Context, id string, endedAt time.Time) error {
	room, ok := f.rooms[id]
	if !ok {
		return db.ErrRoomNotFound
	}
	room.GameEnded = true
	room.GameEndedAt = &endedAt
	room.Version++
	f.closed[id] = endedAt
	return nil
}

func (f *fakeRepo) ListOpenRoomsBefore(ctx context.Context, cutoff time.Time) ([]db.Room, error) {
	var out []db.Room
	for _, room := range f.rooms {
		if !room.GameEnded && room.CreatedAt.Before(cutoff) {
			out = append(out, *copyRoom(room))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) CreatePlayer(ctx context.Context, player *db.Player) error {
	room, ok := f.rooms[player.RoomID]
	if !ok {
		return db.ErrRoomNotFound
	}
	for _, p := range room.Players {
		if p.Name == player.Name {
			return db.ErrPlayerNameTaken
		}
	}
	room.Players = append(room.Players, *player)
	return nil
}

func (f *fakeRepo) SavePlayers(ctx context.Context, players []db.Player) error {
	for _, player := range players {
		room, ok := f.rooms[player.RoomID]
		if !ok {
			return db.ErrRoomNotFound
		}
		found := false
		for i := range room.Players {
			if room.Players[i].ID == player.ID {
				room.Players[i] = player
				found = true
				break
			}
		}
		if !found {
			return db.ErrPlayerNotFound
		}
	}
	return nil
}

func (f *fakeRepo) GetGameByID(ctx context.Context, id uint) (*db.Game, error) {
	game, ok := f.games[id]
	if !ok {
		return nil, db.ErrGameNotFound
	}
	return game, nil
}

func (f *fakeRepo) GetGameByCode(ctx context.Context, code string) (*db.Game, error) {
	for _, game := range f.games {
		if game.Code == code {
			return game, nil
		}
	}
	return nil, db.ErrGameNotFound
}

func (f *fakeRepo) ListOfferedGames(ctx context.Context) ([]db.Game, error) {
	var out []db.Game
	for _, game := range f.games {
		if !game.Published {
			out = append(out, *game)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) ListEditions(ctx context.Context, gameCode string) ([]int, error) {
	game, err := f.GetGameByCode(ctx, gameCode)
	if err != nil {
		return nil, err
	}
	seen := map[int]struct{}{}
	var out []int
	for _, q := range game.Questions {
		if q.Edition == nil {
			continue
		}
		if _, dup := seen[*q.Edition]; dup {
			continue
		}
		seen[*q.Edition] = struct{}{}
		out = append(out, *q.Edition)
	}
	sort.Ints(out)
	return out, nil
}

func (f *fakeRepo) LatestTransaction(ctx context.Context, userID string) (*db.Transaction, error) {
	list := f.txns[userID]
	if len(list) == 0 {
		return nil, db.ErrTransactionNotFound
	}
	cp := *list[len(list)-1]
	return &cp, nil
}

func (f *fakeRepo) CreateTransaction(ctx context.Context, txn *db.Transaction) error {
	txn.ID = uint(len(f.txns[txn.UserID]) + 1)
	cp := *txn
	f.txns[txn.UserID] = append(f.txns[txn.UserID], &cp)
	return nil
}

func (f *fakeRepo) SaveTransaction(ctx context.Context, txn *db.Transaction) error {
	for i, stored := range f.txns[txn.UserID] {
		if stored.ID == txn.ID {
			cp := *txn
			f.txns[txn.UserID][i] = &cp
			return nil
		}
	}
	return db.ErrTransactionNotFound
}

// addGame registers a catalog game with n questions and returns it.
func (f *fakeRepo) addGame(code string, n int) *db.Game {
	id := uint(len(f.games) + 1)
	game := &db.Game{ID: id, Code: code, Name: code}
	for i := 1; i <= n; i++ {
		game.Questions = append(game.Questions, db.Question{
			ID:     id*1000 + uint(i),
			GameID: id,
			Text:   fmt.Sprintf("%s question %d", code, i),
		})
	}
	f.games[id] = game
	return game
}

func (f *fakeRepo) grant(userID, profile string, assigned int) {
	_ = f.CreateTransaction(context.Background(), &db.Transaction{
		UserID:        userID,
		ProfileType:   profile,
		AssignedRooms: assigned,
	})
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, zerolog.Nop(), 2*time.Hour, 1000)
}

// seedRoom stores a room for a game and players named in order, starting
// the turn at the first player.
func seedRoom(repo *fakeRepo, game *db.Game, names ...string) *db.Room {
	room := &db.Room{
		ID:           "room-" + game.Code,
		GameID:       game.ID,
		UserID:       "host",
		CurrentRound: 1,
		CreatedAt:    time.Now().UTC(),
	}
	for seat, name := range names {
		room.Players = append(room.Players, db.Player{
			ID:     fmt.Sprintf("p%d", seat+1),
			RoomID: room.ID,
			Name:   name,
			Seat:   seat,
		})
	}
	if len(room.Players) > 0 {
		room.CurrentTurn = room.Players[0].ID
	}
	repo.rooms[room.ID] = room
	return room
}
