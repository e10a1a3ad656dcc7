package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bottoms-up/internal/rooms"
)

type teamRequest struct {
	Name    string   `json:"name" binding:"required,max=64"`
	Players []string `json:"players" binding:"required,min=1,max=10,dive,required,max=64"`
}

type createRoomRequest struct {
	GameCode    string        `json:"game_code" binding:"required,max=64,gamecode"`
	PlayerNames []string      `json:"player_names" binding:"omitempty,dive,required,max=64"`
	Teams       []teamRequest `json:"teams" binding:"omitempty,dive"`
	Rounds      int           `json:"rounds" binding:"omitempty,min=0,max=100"`
}

type addPlayerRequest struct {
	Name string `json:"name" binding:"required,max=64"`
	Team string `json:"team" binding:"omitempty,max=64"`
}

func (s *Server) handleCreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	input := rooms.CreateRoomInput{
		GameCode:    req.GameCode,
		UserID:      userID(c),
		PlayerNames: req.PlayerNames,
		Rounds:      req.Rounds,
	}
	for _, team := range req.Teams {
		input.Teams = append(input.Teams, rooms.TeamInput{
			Name:    team.Name,
			Players: team.Players,
		})
	}

	room, err := s.svc.CreateRoom(c.Request.Context(), input)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	view, err := s.svc.RoomState(c.Request.Context(), room.ID)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (s *Server) handleRoomState(c *gin.Context) {
	view, err := s.svc.RoomState(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleAddPlayer(c *gin.Context) {
	var req addPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	player, err := s.svc.AddPlayer(c.Request.Context(), c.Param("id"), req.Name, req.Team)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":   player.ID,
		"name": player.Name,
	})
}

func (s *Server) handleEndGame(c *gin.Context) {
	if _, err := s.svc.EndGame(c.Request.Context(), c.Param("id")); err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleCatalog(c *gin.Context) {
	games, err := s.svc.Catalog(c.Request.Context())
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

func (s *Server) handleEditions(c *gin.Context) {
	editions, err := s.svc.Editions(c.Request.Context(), c.Param("code"))
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"editions": editions})
}
