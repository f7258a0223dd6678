//go:build linux || darwin

package server

import (
	"errors"
	"net"
	"os"
	"strconv"
)

// listenFDsStart is the first inherited fd under the systemd protocol.
const listenFDsStart = 3

// Listen binds the server socket. With SOCKET_ACTIVATION=1 it expects a
// single fd inherited from systemd and refuses to fall back silently, so
// a misconfigured unit fails loudly instead of double-binding the port.
func Listen(addr string) (net.Listener, error) {
	if os.Getenv("SOCKET_ACTIVATION") != "1" {
		return net.Listen("tcp", addr)
	}
	if os.Getenv("LISTEN_FDS") != "1" {
		return nil, errors.New("socket activation requested but LISTEN_FDS != 1")
	}
	if pid, _ := strconv.Atoi(os.Getenv("LISTEN_PID")); pid != os.Getpid() {
		return nil, errors.New("socket activation requested but LISTEN_PID is not this process")
	}
	f := os.NewFile(uintptr(listenFDsStart), "activation-socket")
	if f == nil {
		return nil, errors.New("socket activation requested but fd 3 is not open")
	}
	return net.FileListener(f)
}
