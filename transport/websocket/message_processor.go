package websocket

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/maze-backend/internal/entity"
	"github.com/rocketscienceinc/maze-backend/internal/maze"
)

const (
	opContinuation byte = 0x0
	opText         byte = 0x1
	opBinary       byte = 0x2
	opClose        byte = 0x8
	opPing         byte = 0x9
	opPong         byte = 0xA
)

// maxPayloadSize caps a single client message, maze commands are tiny.
const maxPayloadSize = 1 << 20

var (
	ErrConnectionClosed = errors.New("connection closed by client")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrUnmaskedFrame    = errors.New("client frame is not masked")
	ErrFragmentation    = errors.New("invalid message fragmentation")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	masked  bool
	opCode  byte
	length  uint64
	payload []byte
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Player    *entity.Player `json:"player,omitempty"`
	Size      int            `json:"size,omitempty"`
	Direction string         `json:"direction,omitempty"`
}

type ResponsePayload struct {
	Player     *entity.Player   `json:"player,omitempty"`
	Game       *entity.Game     `json:"game,omitempty"`
	Position   *maze.Position   `json:"position,omitempty"`
	Neighbours *maze.Neighbours `json:"neighbours,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (that *Server) sendMessage(writer *bufio.Writer, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{
		Action:  action,
		Payload: payloadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	f := frame{
		isFin:   true,
		opCode:  opText,
		length:  uint64(len(responseBytes)),
		payload: responseBytes,
	}

	if err = writeFrame(writer, f); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

func writeFrame(writer *bufio.Writer, frameData frame) error {
	header := make([]byte, 2, 10)
	header[0] = frameData.opCode

	if frameData.isFin {
		header[0] |= 0x80
	}

	switch {
	case frameData.length < 126:
		header[1] = byte(frameData.length)
	case frameData.length < 1<<16:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(frameData.length))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, frameData.length)
	}

	if _, err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := writer.Write(frameData.payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// readRequest returns the next complete data message. Control frames are
// answered in place, a close frame ends the conversation with ErrConnectionClosed.
func (that *Server) readRequest(bufrw *bufio.ReadWriter) ([]byte, error) {
	var (
		message    []byte
		fragmented bool
	)

	for {
		f, err := readFrame(bufrw.Reader)
		if err != nil {
			return nil, err
		}

		if !f.masked {
			return nil, ErrUnmaskedFrame
		}

		switch f.opCode {
		case opClose:
			_ = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opClose})
			return nil, ErrConnectionClosed
		case opPing:
			if err = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opPong, length: f.length, payload: f.payload}); err != nil {
				return nil, err
			}
			continue
		case opPong:
			continue
		case opText, opBinary:
			if fragmented {
				return nil, fmt.Errorf("%w: new message before the previous one ended", ErrFragmentation)
			}
		case opContinuation:
			if !fragmented {
				return nil, fmt.Errorf("%w: continuation without a message", ErrFragmentation)
			}
		default:
			return nil, fmt.Errorf("unsupported opcode %#x", f.opCode)
		}

		message = append(message, f.payload...)
		if len(message) > maxPayloadSize {
			return nil, ErrPayloadTooLarge
		}

		if f.isFin {
			return message, nil
		}

		fragmented = true
	}
}

func readFrame(reader *bufio.Reader) (frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(reader, header); err != nil {
		return frame{}, fmt.Errorf("failed to read header: %w", err)
	}

	isFin := header[0]>>7 == 1
	opCode := header[0] & 0x0f
	masked := header[1]>>7 == 1

	size, err := readPayloadLength(reader, header[1]&0x7f)
	if err != nil {
		return frame{}, err
	}

	if size > maxPayloadSize {
		return frame{}, ErrPayloadTooLarge
	}

	mask, err := readMask(reader, masked)
	if err != nil {
		return frame{}, err
	}

	payload, err := readData(reader, size, mask)
	if err != nil {
		return frame{}, err
	}

	return frame{
		isFin:   isFin,
		masked:  masked,
		opCode:  opCode,
		length:  size,
		payload: payload,
	}, nil
}

func readPayloadLength(reader io.Reader, payloadLen byte) (uint64, error) {
	switch payloadLen {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(payloadLen), nil
	}
}

func readMask(reader io.Reader, masked bool) ([]byte, error) {
	if !masked {
		return nil, nil
	}

	mask := make([]byte, 4)
	if _, err := io.ReadFull(reader, mask); err != nil {
		return nil, fmt.Errorf("failed to read mask: %w", err)
	}

	return mask, nil
}

func readData(reader io.Reader, size uint64, mask []byte) ([]byte, error) {
	payload := make([]byte, size)
	if _, err := io.ReadFull(reader, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if mask != nil {
		for i := range payload {
			payload[i] ^= mask[i%4]
		}
	}

	return payload, nil
}
