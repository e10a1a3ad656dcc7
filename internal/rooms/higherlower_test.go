package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// a three-card deck leaves exactly one drawable card, which makes the
// outcome of a guess deterministic.
func higherLowerFixture(t *testing.T, table int, drawn []int) (*Service, *fakeRepo, string) {
	t.Helper()
	repo := newFakeRepo()
	game := repo.addGame(CodeHigherLower, 0)
	svc := NewService(repo, zerolog.Nop(), time.Hour, 3)

	room := seedRoom(repo, game, "Ada", "Ben")
	card := table
	room.CurrentCard = &card
	room.LastCard = &card
	room.PreviousCards = append([]int(nil), drawn...)
	return svc, repo, room.ID
}

func TestHigherLowerCorrectGuess(t *testing.T) {
	ctx := context.Background()
	// Table shows 2, cards 1 and 2 are gone, so 3 is the only draw left.
	svc, repo, roomID := higherLowerFixture(t, 2, []int{1, 2})

	room, err := svc.HigherLowerGuess(ctx, roomID, "p1", GuessUp)
	require.NoError(t, err)

	require.NotNil(t, room.CorrectPrediction)
	require.True(t, *room.CorrectPrediction)
	require.Equal(t, 3, *room.CurrentCard)
	require.Equal(t, 2, *room.LastCard)
	require.Equal(t, "p1", room.LastPlayerID)
	require.Equal(t, "p2", room.CurrentTurn)

	stored, err := repo.GetRoom(ctx, roomID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Players[0].Points)
	require.Equal(t, 0, stored.Players[0].Drinks)
}

func TestHigherLowerWrongGuessDrinks(t *testing.T) {
	ctx := context.Background()
	// Table shows 2 and only card 1 remains, so UP must be wrong.
	svc, repo, roomID := higherLowerFixture(t, 2, []int{2, 3})

	room, err := svc.HigherLowerGuess(ctx, roomID, "p1", GuessUp)
	require.NoError(t, err)
	require.False(t, *room.CorrectPrediction)
	require.Equal(t, 1, *room.CurrentCard)

	stored, err := repo.GetRoom(ctx, roomID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.Players[0].Points)
	require.Equal(t, 1, stored.Players[0].Drinks)
}

func TestHigherLowerDeckExhaustionEndsGame(t *testing.T) {
	ctx := context.Background()
	svc, _, roomID := higherLowerFixture(t, 2, []int{1, 2, 3})

	room, err := svc.HigherLowerGuess(ctx, roomID, "p1", GuessUp)
	require.NoError(t, err)
	require.True(t, room.GameEnded)
}

func TestHigherLowerRoundLimitEndsGame(t *testing.T) {
	ctx := context.Background()
	svc, repo, roomID := higherLowerFixture(t, 2, []int{1, 2})
	repo.rooms[roomID].Rounds = 1

	// Two players and two draws already on the table: this guess completes
	// the round and trips the limit.
	room, err := svc.HigherLowerGuess(ctx, roomID, "p1", GuessUp)
	require.NoError(t, err)
	require.Equal(t, 2, room.CurrentRound)
	require.True(t, room.GameEnded)
}

func TestHigherLowerOutOfTurn(t *testing.T) {
	ctx := context.Background()
	svc, _, roomID := higherLowerFixture(t, 2, []int{1, 2})

	_, err := svc.HigherLowerGuess(ctx, roomID, "p2", GuessUp)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.HigherLowerGuess(ctx, roomID, "p1", "SIDEWAYS")
	require.ErrorIs(t, err, ErrValidation)
}
