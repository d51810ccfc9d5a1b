// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

package emulation

import "fmt"

// ModeRequestKind distinguishes the three types of ModeRequest.
type ModeRequestKind int

// List of valid ModeRequestKind values.
const (
	// no request. the zero value
	ModeNoRequest ModeRequestKind = iota

	// leave the current mode without entering a new one
	ModeClear

	// enter the named mode
	ModeEnter
)

// ModeRequest is a request from a network game to change the game mode. The
// zero value is no request.
type ModeRequest struct {
	Kind ModeRequestKind
	Name string
}

// ClearMode returns a ModeRequest to leave the current mode.
func ClearMode() ModeRequest {
	return ModeRequest{Kind: ModeClear}
}

// EnterMode returns a ModeRequest to enter the named mode. An empty name is
// the same as no request.
func EnterMode(name string) ModeRequest {
	if name == "" {
		return ModeRequest{}
	}
	return ModeRequest{Kind: ModeEnter, Name: name}
}

// Pending returns true if the request requires action.
func (req ModeRequest) Pending() bool {
	return req.Kind != ModeNoRequest
}

func (req ModeRequest) String() string {
	switch req.Kind {
	case ModeClear:
		return "clear mode"
	case ModeEnter:
		return fmt.Sprintf("enter mode %s", req.Name)
	}
	return "no mode request"
}
