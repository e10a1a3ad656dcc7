package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bottoms-up/internal/rooms"
)

type Server struct {
	svc *rooms.Service
	log zerolog.Logger
}

func New(svc *rooms.Service, log zerolog.Logger) *Server {
	registerValidators()
	return &Server{svc: svc, log: log}
}

// Router wires the polling query surface and one endpoint per variant
// transition.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLog())

	api := router.Group("/api")
	api.Use(identity())

	api.GET("/games", s.handleCatalog)
	api.GET("/games/:code/editions", s.handleEditions)

	api.POST("/rooms", s.handleCreateRoom)
	api.GET("/rooms/:id", s.handleRoomState)
	api.POST("/rooms/:id/players", s.handleAddPlayer)
	api.POST("/rooms/:id/end", s.handleEndGame)

	api.POST("/rooms/:id/next", s.handleNextCard)
	api.POST("/rooms/:id/stats", s.handleAddPlayerStats)
	api.POST("/rooms/:id/higher-lower/guess", s.handleHigherLowerGuess)
	api.POST("/rooms/:id/most-likely/vote", s.handleMostLikelyVote)
	api.POST("/rooms/:id/paranoia/vote", s.handleParanoiaVote)
	api.POST("/rooms/:id/paranoia/reveal", s.handleParanoiaReveal)
	api.POST("/rooms/:id/paranoia/guess", s.handleParanoiaGuess)
	api.POST("/rooms/:id/charades/outcome", s.handlePairOutcome)
	api.POST("/rooms/:id/solo/outcome", s.handleSoloOutcome)
	api.POST("/rooms/:id/would-you-rather/vote", s.handleWouldYouRatherVote)
	api.POST("/rooms/:id/truth-or-lie/vote", s.handleTruthOrLieVote)
	api.POST("/rooms/:id/truth-or-lie/reveal", s.handleTruthOrLieReveal)
	api.POST("/rooms/:id/triviyay/outcome", s.handleTriviyayOutcome)
	api.POST("/rooms/:id/codenames/start", s.handleCodenamesStart)
	api.POST("/rooms/:id/codenames/clue", s.handleCodenamesClue)
	api.POST("/rooms/:id/codenames/guess", s.handleCodenamesGuess)
	api.POST("/rooms/:id/codenames/end-turn", s.handleCodenamesEndTurn)
	api.POST("/rooms/:id/memory/guess", s.handleMemoryGuess)
	api.POST("/rooms/:id/memory/next", s.handleMemoryNext)

	admin := api.Group("/admin")
	admin.Use(requireAdmin())
	admin.GET("/rooms/open", s.handleOpenRooms)
	admin.POST("/rooms/close", s.handleCloseOpenRooms)
	admin.POST("/transactions", s.handleGrantTransaction)

	return router
}
