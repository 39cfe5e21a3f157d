package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
	"github.com/rocketscienceinc/maze-backend/internal/entity"
	"github.com/rocketscienceinc/maze-backend/internal/maze"
)

const (
	actionConnect        = "connect"
	actionMazeNew        = "maze:new"
	actionMazeMove       = "maze:move"
	actionMazeNeighbours = "maze:neighbours"
	actionMazeState      = "maze:state"
	actionMazeLeave      = "maze:leave"
	actionError          = "error"
)

const (
	errMalformedMessage = "malformed message"
	errUnknownAction    = "unknown action"
	errPlayerRequired   = "player is required"
	errInternal         = "internal error"
)

// publicErrors are safe to show to a client verbatim.
var publicErrors = []error{
	apperror.ErrDirectionBlocked,
	apperror.ErrInvalidDirection,
	apperror.ErrInvalidMazeSize,
	apperror.ErrGameFinished,
	apperror.ErrGameNotFound,
	apperror.ErrPlayerNotFound,
	apperror.ErrNoActiveGame,
}

// publicError renders err as the single string a client sees.
func publicError(err error) string {
	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return errInternal
}

func (that *Server) handleConnect(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := that.parsePlayerPayload(msg, writer)
	if payloadReq == nil {
		return err
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(writer, msg.Action, publicError(err))
	}

	payloadResp := ResponsePayload{
		Player: player,
	}

	if player.InGame() {
		game, err := that.uGame.GetGame(ctx, player.ID)
		if err != nil {
			log.Warn("failed to restore game", "gameID", player.GameID, "error", err)
		} else {
			payloadResp.Game = game
			payloadResp.Position = positionOf(game)
		}
	}

	if err = that.sendMessage(writer, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewMaze(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleNewMaze")

	payloadReq, err := that.parsePlayerPayload(msg, writer)
	if payloadReq == nil {
		return err
	}

	game, err := that.uGame.NewGame(ctx, payloadReq.Player.ID, payloadReq.Size)
	if err != nil {
		log.Error("failed to create a new maze", "playerID", payloadReq.Player.ID, "error", err)
		return that.sendErrorResponse(writer, msg.Action, publicError(err))
	}

	payloadResp := ResponsePayload{
		Player:   &entity.Player{ID: payloadReq.Player.ID, GameID: game.ID},
		Game:     game,
		Position: positionOf(game),
	}

	return that.sendMessage(writer, msg.Action, payloadResp)
}

func (that *Server) handleMove(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleMove")

	payloadReq, err := that.parsePlayerPayload(msg, writer)
	if payloadReq == nil {
		return err
	}

	direction, err := maze.ParseDirection(payloadReq.Direction)
	if err != nil {
		return that.sendErrorResponse(writer, msg.Action, publicError(err))
	}

	game, err := that.uGame.MovePlayer(ctx, payloadReq.Player.ID, direction)
	if err != nil {
		if !errors.Is(err, apperror.ErrDirectionBlocked) {
			log.Error("failed to move player", "playerID", payloadReq.Player.ID, "error", err)
		}

		return that.sendErrorResponse(writer, msg.Action, publicError(err))
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{
		Game:     game,
		Position: positionOf(game),
	})
}

func (that *Server) handleNeighbours(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	payloadReq, err := that.parsePlayerPayload(msg, writer)
	if payloadReq == nil {
		return err
	}

	neighbours, err := that.uGame.Neighbours(ctx, payloadReq.Player.ID)
	if err != nil {
		return that.sendErrorResponse(writer, msg.Action, publicError(err))
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{
		Neighbours: &neighbours,
	})
}

func (that *Server) handleState(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	payloadReq, err := that.parsePlayerPayload(msg, writer)
	if payloadReq == nil {
		return err
	}

	game, err := that.uGame.GetGame(ctx, payloadReq.Player.ID)
	if err != nil {
		return that.sendErrorResponse(writer, msg.Action, publicError(err))
	}

	return that.sendMessage(writer, msg.Action, ResponsePayload{
		Game:     game,
		Position: positionOf(game),
	})
}

func (that *Server) handleLeave(ctx context.Context, msg *Message, writer *bufio.Writer) error {
	log := that.logger.With("method", "handleLeave")

	payloadReq, err := that.parsePlayerPayload(msg, writer)
	if payloadReq == nil {
		return err
	}

	player, err := that.uGame.LeaveGame(ctx, payloadReq.Player.ID)
	if err != nil {
		return that.sendErrorResponse(writer, msg.Action, publicError(err))
	}

	log.Info("player left the maze", "playerID", player.ID)

	return that.sendMessage(writer, msg.Action, ResponsePayload{
		Player: player,
	})
}

// parsePlayerPayload decodes the request payload. A nil payload means the client has
// already been answered with an error, the returned error is a transport failure.
func (that *Server) parsePlayerPayload(msg *Message, writer *bufio.Writer) (*RequestPayload, error) {
	var payloadReq RequestPayload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return nil, that.sendErrorResponse(writer, msg.Action, errMalformedMessage)
	}

	if payloadReq.Player == nil {
		return nil, that.sendErrorResponse(writer, msg.Action, errPlayerRequired)
	}

	return &payloadReq, nil
}

func (that *Server) sendErrorResponse(writer *bufio.Writer, action, errorMsg string) error {
	return that.sendMessage(writer, action, ResponsePayload{Error: errorMsg})
}

func positionOf(game *entity.Game) *maze.Position {
	position := game.Maze.Player()

	return &position
}
