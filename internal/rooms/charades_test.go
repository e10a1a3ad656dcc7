package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairOutcomeScoresBothMembers(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeVerbalCharades, 4)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben", "Cleo")
	room.AllPairIDs = allPairKeys(playerIDs(room))
	room.PlayerOneID = "p1"
	room.PlayerTwoID = "p2"

	updated, err := svc.PairOutcome(ctx, room.ID, "p3", OutcomeCorrect)
	require.NoError(t, err)
	require.NotEmpty(t, updated.PlayerOneID)
	require.NotEqual(t, updated.PlayerOneID, updated.PlayerTwoID)

	stored, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Players[0].Points)
	require.Equal(t, 1, stored.Players[1].Points)
	require.Equal(t, 0, stored.Players[2].Points)

	_, err = svc.PairOutcome(ctx, room.ID, "p3", "MAYBE")
	require.ErrorIs(t, err, ErrValidation)
}

func TestPairOutcomeIncorrectDrinks(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeTaboo, 4)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben")
	room.AllPairIDs = allPairKeys(playerIDs(room))
	room.PlayerOneID = "p1"
	room.PlayerTwoID = "p2"

	_, err := svc.PairOutcome(ctx, room.ID, "p1", OutcomeIncorrect)
	require.NoError(t, err)

	stored, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Players[0].Drinks)
	require.Equal(t, 1, stored.Players[1].Drinks)
}

func TestSoloOutcomeCurrentPlayerOnly(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeCatherinesSpecial, 4)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben")

	_, err := svc.SoloOutcome(ctx, room.ID, "p2", OutcomeCorrect)
	require.ErrorIs(t, err, ErrInvalidState)

	updated, err := svc.SoloOutcome(ctx, room.ID, "p1", OutcomeCorrect)
	require.NoError(t, err)
	require.Equal(t, "p2", updated.CurrentTurn)

	stored, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Players[0].Points)
}
