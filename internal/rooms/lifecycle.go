package rooms

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"bottoms-up/internal/db"
)

// Profile types whose room quota is metered. Anything else creates rooms
// freely.
var meteredProfiles = map[string]struct{}{
	"GUEST":   {},
	"PREMIUM": {},
}

const (
	minTeamPlayers = 1
	maxTeamPlayers = 10
)

type TeamInput struct {
	Name    string
	Players []string
}

type CreateRoomInput struct {
	GameCode    string
	UserID      string
	PlayerNames []string
	Teams       []TeamInput
	Rounds      int
}

// CreateRoom opens a room: quota gate, catalog lookup, player/team seeding
// and the initial rotation draw.
func (s *Service) CreateRoom(ctx context.Context, input CreateRoomInput) (*db.Room, error) {
	if input.UserID == "" {
		return nil, ErrUnauthenticated
	}

	game, err := s.repo.GetGameByCode(ctx, input.GameCode)
	if err != nil {
		if errors.Is(err, db.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	if len(input.Teams) > 0 && !teamBased(game.Code) {
		return nil, fmt.Errorf("%w: %s does not take teams", ErrValidation, game.Code)
	}

	now := s.now()
	room := &db.Room{
		ID:           uuid.NewString(),
		GameID:       game.ID,
		UserID:       input.UserID,
		Rounds:       input.Rounds,
		CurrentRound: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if teamBased(game.Code) {
		if err := seedTeams(room, game, input.Teams, now); err != nil {
			return nil, err
		}
	} else {
		if err := s.seedPlayers(room, game, input.PlayerNames, now); err != nil {
			return nil, err
		}
	}

	// Quota is spent only once the room is known to be playable.
	if err := s.consumeQuota(ctx, input.UserID); err != nil {
		return nil, err
	}

	switch game.Code {
	case CodeHigherLower:
		s.seedHigherLower(room)
	case CodeMemoryChain:
		seedMemoryChain(room, game)
	}

	pool := poolFor(room, game)
	if len(pool) > 0 {
		pick := pool[rand.IntN(len(pool))]
		room.CurrentQuestionID = &pick
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("room_id", room.ID).
		Str("game", game.Code).
		Int("players", len(room.Players)).
		Msg("room created")
	return room, nil
}

func (s *Service) consumeQuota(ctx context.Context, userID string) error {
	txn, err := s.repo.LatestTransaction(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrTransactionNotFound) {
			return ErrQuotaExceeded
		}
		return err
	}
	if _, metered := meteredProfiles[txn.ProfileType]; !metered {
		return nil
	}
	if txn.UsedRooms >= txn.AssignedRooms {
		return ErrQuotaExceeded
	}
	txn.UsedRooms++
	return s.repo.SaveTransaction(ctx, txn)
}

func seedTeams(room *db.Room, game *db.Game, teams []TeamInput, now time.Time) error {
	if len(teams) == 0 {
		return fmt.Errorf("%w: at least one team required", ErrValidation)
	}
	// Codenames turn order runs over the RED and BLUE tags, so the room
	// must be created with exactly those two teams.
	if game.Code == CodeCodenames && len(teams) != 2 {
		return fmt.Errorf("%w: codenames needs exactly two teams, %s and %s", ErrValidation, TeamRed, TeamBlue)
	}
	names := make([]string, 0, len(teams))
	seat := 0
	for _, team := range teams {
		teamName := strings.TrimSpace(team.Name)
		if teamName == "" {
			return fmt.Errorf("%w: team name required", ErrValidation)
		}
		if game.Code == CodeCodenames && teamName != TeamRed && teamName != TeamBlue {
			return fmt.Errorf("%w: codenames teams must be named %s and %s", ErrValidation, TeamRed, TeamBlue)
		}
		if containsString(names, teamName) {
			return fmt.Errorf("%w: duplicate team %q", ErrValidation, teamName)
		}
		if len(team.Players) < minTeamPlayers || len(team.Players) > maxTeamPlayers {
			return fmt.Errorf("%w: team %q needs 1-10 players", ErrValidation, teamName)
		}
		names = append(names, teamName)
		for _, playerName := range team.Players {
			playerName = strings.TrimSpace(playerName)
			if playerName == "" {
				return fmt.Errorf("%w: player name required", ErrValidation)
			}
			tag := teamName
			room.Players = append(room.Players, db.Player{
				ID:        uuid.NewString(),
				RoomID:    room.ID,
				Name:      playerName,
				Team:      &tag,
				Seat:      seat,
				CreatedAt: now,
				UpdatedAt: now,
			})
			seat++
		}
	}
	room.PlayingTeams = names
	room.CurrentTurn = names[rand.IntN(len(names))]
	return nil
}

func (s *Service) seedPlayers(room *db.Room, game *db.Game, names []string, now time.Time) error {
	if len(names) < 2 {
		return fmt.Errorf("%w: at least two players required", ErrValidation)
	}
	seenNames := make(map[string]struct{}, len(names))
	for seat, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("%w: player name required", ErrValidation)
		}
		if _, dup := seenNames[strings.ToLower(name)]; dup {
			return fmt.Errorf("%w: duplicate player %q", ErrValidation, name)
		}
		seenNames[strings.ToLower(name)] = struct{}{}
		room.Players = append(room.Players, db.Player{
			ID:        uuid.NewString(),
			RoomID:    room.ID,
			Name:      name,
			Seat:      seat,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	ids := playerIDs(room)
	room.CurrentTurn = ids[rand.IntN(len(ids))]

	if pairBased(game.Code) {
		room.AllPairIDs = allPairKeys(ids)
		key := room.AllPairIDs[rand.IntN(len(room.AllPairIDs))]
		if one, two, ok := pairMembers(key); ok {
			room.PlayerOneID = one
			room.PlayerTwoID = two
		}
	}
	return nil
}

// AddPlayer registers a late joiner. Players are never removed once
// created; pair-based variants also gain pair keys against every existing
// player. Team-based variants require a team so the joiner takes part in
// the turn rotation.
func (s *Service) AddPlayer(ctx context.Context, roomID, name, team string) (*db.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name required", ErrValidation)
	}
	team = strings.TrimSpace(team)

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.GameEnded {
		return nil, ErrGameEnded
	}
	for _, p := range room.Players {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("%w: name %q already taken", ErrValidation, name)
		}
	}
	game, err := s.repo.GetGameByID(ctx, room.GameID)
	if err != nil {
		return nil, err
	}

	var teamTag *string
	if teamBased(game.Code) {
		if team == "" {
			return nil, fmt.Errorf("%w: %s players must join a team", ErrValidation, game.Code)
		}
		if !containsString(room.PlayingTeams, team) {
			return nil, fmt.Errorf("%w: unknown team %q", ErrValidation, team)
		}
		teamTag = &team
	} else if team != "" {
		return nil, fmt.Errorf("%w: %s does not take teams", ErrValidation, game.Code)
	}

	now := s.now()
	player := &db.Player{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		Name:      name,
		Team:      teamTag,
		Seat:      len(room.Players),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		if errors.Is(err, db.ErrPlayerNameTaken) {
			return nil, fmt.Errorf("%w: name %q already taken", ErrValidation, name)
		}
		return nil, err
	}

	if pairBased(game.Code) {
		_, err = s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
			existing := playerIDs(room)
			room.AllPairIDs = append(room.AllPairIDs, pairKeysWith(existing, player.ID)...)
			return nil, nil
		})
		if err != nil {
			return nil, err
		}
	}
	return player, nil
}

// EndGame is terminal: no mutation is meaningful on the room afterwards.
func (s *Service) EndGame(ctx context.Context, roomID string) (*db.Room, error) {
	return s.updateRoom(ctx, roomID, func(room *db.Room, game *db.Game) ([]db.Player, error) {
		endedAt := s.now()
		room.GameEnded = true
		room.GameEndedAt = &endedAt
		return nil, nil
	})
}

// OpenRooms lists rooms still open past the TTL, the maintenance sweep's
// worklist.
func (s *Service) OpenRooms(ctx context.Context) ([]db.Room, error) {
	cutoff := s.now().Add(-s.roomTTL)
	return s.repo.ListOpenRoomsBefore(ctx, cutoff)
}

// CloseOpenRooms ends every stale room. The end timestamp is backdated to
// creation plus the TTL so the recorded lifetime is exactly the cap.
func (s *Service) CloseOpenRooms(ctx context.Context) (int, error) {
	stale, err := s.OpenRooms(ctx)
	if err != nil {
		return 0, err
	}
	closed := 0
	for _, room := range stale {
		endedAt := room.CreatedAt.Add(s.roomTTL)
		if err := s.repo.CloseRoom(ctx, room.ID, endedAt); err != nil {
			s.log.Error().Err(err).Str("room_id", room.ID).Msg("stale room close failed")
			continue
		}
		closed++
	}
	if closed > 0 {
		s.log.Info().Int("closed", closed).Msg("stale rooms closed")
	}
	return closed, nil
}

// GrantTransaction writes a quota ledger row for a user.
func (s *Service) GrantTransaction(ctx context.Context, userID, profileType string, assignedRooms int) (*db.Transaction, error) {
	if userID == "" || profileType == "" {
		return nil, fmt.Errorf("%w: user id and profile type required", ErrValidation)
	}
	now := s.now()
	txn := &db.Transaction{
		UserID:        userID,
		ProfileType:   profileType,
		AssignedRooms: assignedRooms,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}
