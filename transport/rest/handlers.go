package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/maze-backend/internal/maze"
)

type newMazeRequest struct {
	Size int `json:"size"`
}

type moveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

func (that *Server) createPlayer(c *gin.Context) {
	player, err := that.uGame.GetOrCreatePlayer(c.Request.Context(), "")
	if err != nil {
		that.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

func (that *Server) newMaze(c *gin.Context) {
	var request newMazeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	game, err := that.uGame.NewGame(c.Request.Context(), c.Param("id"), request.Size)
	if err != nil {
		that.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

func (that *Server) getMaze(c *gin.Context) {
	game, err := that.uGame.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *Server) leaveMaze(c *gin.Context) {
	if _, err := that.uGame.LeaveGame(c.Request.Context(), c.Param("id")); err != nil {
		that.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (that *Server) move(c *gin.Context) {
	var request moveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	direction, err := maze.ParseDirection(request.Direction)
	if err != nil {
		that.respondError(c, err)
		return
	}

	game, err := that.uGame.MovePlayer(c.Request.Context(), c.Param("id"), direction)
	if err != nil {
		that.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (that *Server) neighbours(c *gin.Context) {
	neighbours, err := that.uGame.Neighbours(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, neighbours)
}

func (that *Server) position(c *gin.Context) {
	position, err := that.uGame.PlayerPosition(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, position)
}
