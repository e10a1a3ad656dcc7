package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type actorRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
}

type statsRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
	Points   int    `json:"points" binding:"omitempty,min=0,max=10"`
	Drinks   int    `json:"drinks" binding:"omitempty,min=0,max=10"`
	Advance  bool   `json:"advance"`
}

type directionRequest struct {
	PlayerID  string `json:"player_id" binding:"required,max=64"`
	Direction string `json:"direction" binding:"required,oneof=UP DOWN"`
}

type targetRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
	TargetID string `json:"target_id" binding:"required,max=64"`
}

type outcomeRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
	Outcome  string `json:"outcome" binding:"required,oneof=CORRECT INCORRECT"`
}

type choiceRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
	Choice   string `json:"choice" binding:"required,oneof=A B"`
}

type truthLieRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
	Vote     string `json:"vote" binding:"required,oneof=TRUTH LIE"`
}

type triviyayRequest struct {
	PlayerID string   `json:"player_id" binding:"required,max=64"`
	Winners  []string `json:"winners" binding:"omitempty,dive,required,max=64"`
	Forfeit  bool     `json:"forfeit"`
}

type clueRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
	Guesses  int    `json:"guesses" binding:"required,min=1,max=25"`
}

type cardRequest struct {
	PlayerID string `json:"player_id" binding:"required,max=64"`
	CardID   int    `json:"card_id" binding:"required,min=1"`
}

// respondRoom renders the post-action room view, the same shape polls see.
func (s *Server) respondRoom(c *gin.Context, roomID string, err error) {
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	view, err := s.svc.RoomState(c.Request.Context(), roomID)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleNextCard(c *gin.Context) {
	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.NextCard(c.Request.Context(), roomID, req.PlayerID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleAddPlayerStats(c *gin.Context) {
	var req statsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.AddPlayerStats(c.Request.Context(), roomID, req.PlayerID, req.Points, req.Drinks, req.Advance)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleHigherLowerGuess(c *gin.Context) {
	var req directionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.HigherLowerGuess(c.Request.Context(), roomID, req.PlayerID, req.Direction)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleMostLikelyVote(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.MostLikelyVote(c.Request.Context(), roomID, req.PlayerID, req.TargetID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleParanoiaVote(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.ParanoiaVote(c.Request.Context(), roomID, req.PlayerID, req.TargetID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleParanoiaReveal(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.ParanoiaReveal(c.Request.Context(), roomID, req.PlayerID, req.TargetID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleParanoiaGuess(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.ParanoiaGuess(c.Request.Context(), roomID, req.PlayerID, req.TargetID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handlePairOutcome(c *gin.Context) {
	var req outcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.PairOutcome(c.Request.Context(), roomID, req.PlayerID, req.Outcome)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleSoloOutcome(c *gin.Context) {
	var req outcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.SoloOutcome(c.Request.Context(), roomID, req.PlayerID, req.Outcome)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleWouldYouRatherVote(c *gin.Context) {
	var req choiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.WouldYouRatherVote(c.Request.Context(), roomID, req.PlayerID, req.Choice)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleTruthOrLieVote(c *gin.Context) {
	var req truthLieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.TruthOrLieVote(c.Request.Context(), roomID, req.PlayerID, req.Vote)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleTruthOrLieReveal(c *gin.Context) {
	var req truthLieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.TruthOrLieReveal(c.Request.Context(), roomID, req.PlayerID, req.Vote)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleTriviyayOutcome(c *gin.Context) {
	var req triviyayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.TriviyayOutcome(c.Request.Context(), roomID, req.PlayerID, req.Winners, req.Forfeit)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleCodenamesStart(c *gin.Context) {
	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.CodenamesStart(c.Request.Context(), roomID, req.PlayerID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleCodenamesClue(c *gin.Context) {
	var req clueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.CodenamesClue(c.Request.Context(), roomID, req.PlayerID, req.Guesses)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleCodenamesGuess(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.CodenamesGuess(c.Request.Context(), roomID, req.PlayerID, req.CardID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleCodenamesEndTurn(c *gin.Context) {
	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.CodenamesEndTurn(c.Request.Context(), roomID, req.PlayerID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleMemoryGuess(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.MemoryChainGuess(c.Request.Context(), roomID, req.PlayerID, req.CardID)
	s.respondRoom(c, roomID, err)
}

func (s *Server) handleMemoryNext(c *gin.Context) {
	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	roomID := c.Param("id")
	_, err := s.svc.MemoryChainNext(c.Request.Context(), roomID, req.PlayerID)
	s.respondRoom(c, roomID, err)
}
