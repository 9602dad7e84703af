// Package protocol defines the JSON wire messages spoken by the control and
// observer sockets. Schemas live under schemas/ and are validated in tests.
package protocol

import (
	"encoding/json"
	"fmt"
)

const Version = "1.0"

const (
	TypeHello     = "HELLO"
	TypeWelcome   = "WELCOME"
	TypeCommand   = "COMMAND"
	TypeSubscribe = "SUBSCRIBE"
	TypeFrame     = "FRAME"
	TypeError     = "ERROR"
)

// Command verbs carried by COMMAND messages.
const (
	CmdApplyTool = "APPLY_TOOL"
	CmdSetSpeed  = "SET_SPEED"
)

type BaseMessage struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
}

func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return BaseMessage{}, fmt.Errorf("decode base: %w", err)
	}
	if m.Type == "" {
		return BaseMessage{}, fmt.Errorf("decode base: missing type")
	}
	return m, nil
}

type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name,omitempty"`
}

type WorldParams struct {
	TickRateHz int     `json:"tick_rate_hz"`
	GridSize   int     `json:"grid_size"`
	Seed       uint64  `json:"seed"`
	MaxGuests  int     `json:"max_guests"`
	EntryFee   float64 `json:"entry_fee"`
}

type WelcomeMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	WorldID         string      `json:"world_id"`
	WorldParams     WorldParams `json:"world_params"`
}

// ToolReq describes one editing action on the grid.
type ToolReq struct {
	Kind      string `json:"kind"` // bulldoze|path|queue|building|track|operate
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Building  string `json:"building,omitempty"`
	Piece     string `json:"piece,omitempty"`
	CoasterID int    `json:"coaster_id,omitempty"`
	Operating *bool  `json:"operating,omitempty"`
}

type CommandMsg struct {
	Type            string   `json:"type"`
	ProtocolVersion string   `json:"protocol_version"`
	Cmd             string   `json:"cmd"`
	Tool            *ToolReq `json:"tool,omitempty"`
	Speed           *int     `json:"speed,omitempty"`
}

type SubscribeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ObserverName    string `json:"observer_name,omitempty"`
}

type ClockView struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute float64 `json:"minute"`
	Text   string  `json:"text"`
}

type GuestView struct {
	ID        int     `json:"id"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Progress  float64 `json:"progress"`
	Dir       string  `json:"dir"`
	State     string  `json:"state"`
	Happiness float64 `json:"happiness"`
	HasHat    bool    `json:"has_hat"`
	Shirt     int     `json:"shirt"`
	Pants     int     `json:"pants"`
}

type TrainView struct {
	State string    `json:"state"`
	Cars  []float64 `json:"cars"`
}

type CoasterView struct {
	ID        int         `json:"id"`
	Operating bool        `json:"operating"`
	Trains    []TrainView `json:"trains"`
}

// FrameMsg is the per-tick render payload streamed to observers.
type FrameMsg struct {
	Type            string        `json:"type"`
	ProtocolVersion string        `json:"protocol_version"`
	Tick            uint64        `json:"tick"`
	Speed           int           `json:"speed"`
	Clock           ClockView     `json:"clock"`
	Cash            float64       `json:"cash"`
	Rating          float64       `json:"rating"`
	Guests          []GuestView   `json:"guests"`
	Coasters        []CoasterView `json:"coasters"`
	Digest          string        `json:"digest"`
}

// TileView carries one non-empty tile in the bootstrap payload.
type TileView struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Terrain   string `json:"terrain"`
	Building  string `json:"building,omitempty"`
	Path      bool   `json:"path,omitempty"`
	Queue     bool   `json:"queue,omitempty"`
	Track     bool   `json:"track,omitempty"`
	CoasterID int    `json:"coaster_id,omitempty"`
	Elevation int    `json:"elevation,omitempty"`
}

// CoasterColors is a ride's paint scheme as hex strings.
type CoasterColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Supports  string `json:"supports"`
}

// BootstrapTrack is a coaster's static geometry for renderers.
type BootstrapTrack struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Style     string        `json:"style"`
	Color     CoasterColors `json:"color"`
	Tiles     [][2]int      `json:"tiles"`
	Pieces    []string      `json:"pieces"`
	Dirs      []string      `json:"dirs"`
	Heights   []int         `json:"heights"`
	ChainLift []bool        `json:"chain_lift"`
	Struts    []string      `json:"struts"`
	Station   [2]int        `json:"station"`
}

type BootstrapMsg struct {
	WorldID  string           `json:"world_id"`
	Tick     uint64           `json:"tick"`
	GridSize int              `json:"grid_size"`
	Tiles    []TileView       `json:"tiles"`
	Coasters []BootstrapTrack `json:"coasters"`
}

type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code"`
	Message         string `json:"message"`
}
