//go:build !linux && !darwin

// Package server owns the network listener for the HTTP process.
package server

import "net"

// Listen binds the server socket. Socket activation is a unix-only
// concern; other platforms always dial the address directly.
func Listen(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
