package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"bottoms-up/internal/db"
)

func TestTruthOrLieRevoteReplacesBallot(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeTruthOrLie, 5)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben", "Cleo")

	_, err := svc.TruthOrLieVote(ctx, room.ID, "p2", VoteTruth)
	require.NoError(t, err)
	updated, err := svc.TruthOrLieVote(ctx, room.ID, "p2", VoteLie)
	require.NoError(t, err)

	require.NotContains(t, []string(updated.VotesA), "p2")
	require.Equal(t, []string{"p2"}, []string(updated.VotesB))
}

func TestTruthOrLieRevealScoresTable(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeTruthOrLie, 5)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben", "Cleo")

	// Subject can neither vote nor reveal early.
	_, err := svc.TruthOrLieVote(ctx, room.ID, "p1", VoteTruth)
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = svc.TruthOrLieReveal(ctx, room.ID, "p1", VoteTruth)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.TruthOrLieVote(ctx, room.ID, "p2", VoteTruth)
	require.NoError(t, err)
	_, err = svc.TruthOrLieVote(ctx, room.ID, "p3", VoteLie)
	require.NoError(t, err)

	_, err = svc.TruthOrLieReveal(ctx, room.ID, "p2", VoteTruth)
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.TruthOrLieReveal(ctx, room.ID, "p1", VoteTruth)
	require.NoError(t, err)
	require.Equal(t, VoteTruth, *updated.CurrentAnswer)

	stored, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	byID := map[string]db.Player{}
	for _, p := range stored.Players {
		byID[p.ID] = p
	}
	require.Equal(t, 1, byID["p2"].Points, "correct voter scores")
	require.Equal(t, 0, byID["p2"].Drinks)
	require.Equal(t, 1, byID["p3"].Drinks, "wrong voter drinks")
	require.Equal(t, 0, byID["p1"].Points, "subject is untouched")

	// A second reveal and late ballots are both refused.
	_, err = svc.TruthOrLieReveal(ctx, room.ID, "p1", VoteLie)
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = svc.TruthOrLieVote(ctx, room.ID, "p2", VoteLie)
	require.ErrorIs(t, err, ErrInvalidState)
}
