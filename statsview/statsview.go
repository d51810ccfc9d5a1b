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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is used when Launch() is called with an empty address.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// Server is a running statsview.
type Server struct {
	Address string
	mgr     *statsview.ViewManager
}

// Launch a new goroutine running the statsview.
func Launch(output io.Writer, address string) *Server {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	srv := &Server{
		Address: address,
		mgr:     statsview.New(),
	}
	go srv.mgr.Start()

	fmt.Fprintf(output, "stats server available at %s\n", srv.URL())

	return srv
}

// URL returns the location of the statistics page.
func (srv *Server) URL() string {
	return fmt.Sprintf("http://%s%s", srv.Address, url)
}

// Stop the server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
