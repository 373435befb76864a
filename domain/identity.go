// Package domain contains core concepts of the chat client.
// This file defines the session identity and connection states.
// No runtime, network, or UI logic should be added here.
package domain

// Identity is established only by a successful login response.
type Identity struct {
	Nickname string
	ClientID int64
}

type ConnectionState string

const (
	Disconnected  ConnectionState = "DISCONNECTED"
	Connecting    ConnectionState = "CONNECTING"
	Connected     ConnectionState = "CONNECTED"
	LoggingIn     ConnectionState = "LOGGING_IN"
	LoggedIn      ConnectionState = "LOGGED_IN"
	Disconnecting ConnectionState = "DISCONNECTING"
)

// HasTransport reports whether a transport handle is owned in this state.
func (s ConnectionState) HasTransport() bool {
	switch s {
	case Connected, LoggingIn, LoggedIn:
		return true
	default:
		return false
	}
}
