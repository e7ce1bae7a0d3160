package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms handles GET /api/rooms.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListRooms()
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id, accepting a numeric id or a slug.
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	param := c.Param("id")

	var (
		room interface{}
		err  error
	)
	if id, perr := strconv.ParseUint(param, 10, 32); perr == nil {
		room, err = ctrl.RoomSvc.GetRoom(uint(id))
	} else {
		room, err = ctrl.RoomSvc.GetRoomBySlug(param)
	}

	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		log.Printf("GetRoom error for %q: %v", param, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room"})
		return
	}

	c.JSON(http.StatusOK, room)
}
