package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMostLikelyVote(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	game := repo.addGame(CodeMostLikely, 4)
	svc := newTestService(repo)
	room := seedRoom(repo, game, "Ada", "Ben")
	first := game.Questions[0].ID
	room.CurrentQuestionID = &first

	// Only the player holding the turn points.
	_, err := svc.MostLikelyVote(ctx, room.ID, "p2", "p1")
	require.ErrorIs(t, err, ErrInvalidState)

	updated, err := svc.MostLikelyVote(ctx, room.ID, "p1", "p2")
	require.NoError(t, err)
	require.Equal(t, "p2", updated.CurrentTurn)
	require.NotEqual(t, first, *updated.CurrentQuestionID)

	stored, err := repo.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Players[1].Points, "the target scores")
	require.Equal(t, 0, stored.Players[0].Points)

	_, err = svc.MostLikelyVote(ctx, room.ID, "p2", "stranger")
	require.ErrorIs(t, err, ErrForbidden)
}
