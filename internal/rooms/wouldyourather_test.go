package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWouldYouRatherSplitDecisionAllDrink(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeWouldYouRather, 5)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben", "Cleo", "Dan")

	for _, vote := range []struct{ player, choice string }{
		{"p1", ChoiceA}, {"p2", ChoiceA}, {"p3", ChoiceB},
	} {
		_, err := svc.WouldYouRatherVote(ctx, room.ID, vote.player, vote.choice)
		require.NoError(t, err)
	}
	_, err := svc.WouldYouRatherVote(ctx, room.ID, "p4", ChoiceB)
	require.NoError(t, err)

	stored, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	for _, p := range stored.Players {
		require.Equal(t, 1, p.Drinks, "player %s", p.Name)
		require.Equal(t, 0, p.Points, "player %s", p.Name)
	}
}

func TestWouldYouRatherMinorityDrinks(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeWouldYouRather, 5)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben", "Cleo")

	for _, vote := range []struct{ player, choice string }{
		{"p1", ChoiceA}, {"p2", ChoiceA}, {"p3", ChoiceB},
	} {
		_, err := svc.WouldYouRatherVote(ctx, room.ID, vote.player, vote.choice)
		require.NoError(t, err)
	}

	stored, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	byID := map[string]int{}
	for _, p := range stored.Players {
		byID[p.ID] = p.Points*10 + p.Drinks
	}
	require.Equal(t, 10, byID["p1"], "majority scores")
	require.Equal(t, 10, byID["p2"], "majority scores")
	require.Equal(t, 1, byID["p3"], "minority drinks")
}

func TestWouldYouRatherRejectsDoubleVote(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeWouldYouRather, 5)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben", "Cleo")

	_, err := svc.WouldYouRatherVote(ctx, room.ID, "p1", ChoiceA)
	require.NoError(t, err)
	_, err = svc.WouldYouRatherVote(ctx, room.ID, "p1", ChoiceB)
	require.ErrorIs(t, err, ErrInvalidState)
}
