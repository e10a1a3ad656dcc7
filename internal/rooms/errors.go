package rooms

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrQuotaExceeded   = errors.New("no available rooms")
	ErrForbidden       = errors.New("player not in room")
	ErrInvalidState    = errors.New("action not allowed in current state")
	ErrGameEnded       = errors.New("game already ended")
	ErrValidation      = errors.New("invalid input")
)
