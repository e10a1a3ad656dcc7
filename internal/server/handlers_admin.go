package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type grantTransactionRequest struct {
	UserID        string `json:"user_id" binding:"required,max=64"`
	ProfileType   string `json:"profile_type" binding:"required,max=32"`
	AssignedRooms int    `json:"assigned_rooms" binding:"omitempty,min=0,max=10000"`
}

type openRoomView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleOpenRooms(c *gin.Context) {
	stale, err := s.svc.OpenRooms(c.Request.Context())
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	views := make([]openRoomView, 0, len(stale))
	for _, room := range stale {
		views = append(views, openRoomView{
			ID:        room.ID,
			UserID:    room.UserID,
			CreatedAt: room.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"rooms": views})
}

func (s *Server) handleCloseOpenRooms(c *gin.Context) {
	closed, err := s.svc.CloseOpenRooms(c.Request.Context())
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "closed": closed})
}

func (s *Server) handleGrantTransaction(c *gin.Context) {
	var req grantTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	txn, err := s.svc.GrantTransaction(c.Request.Context(), req.UserID, req.ProfileType, req.AssignedRooms)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":             txn.ID,
		"user_id":        txn.UserID,
		"profile_type":   txn.ProfileType,
		"assigned_rooms": txn.AssignedRooms,
		"used_rooms":     txn.UsedRooms,
	})
}
