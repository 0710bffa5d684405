// Package handlers implements the inquiry CLI commands.
package handlers

import (
	"os"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/integrations/bookingapi"
	"github.com/m04kA/RhuMuda-BookingService/pkg/logger"
)

// Connection holds the booking API flags shared by all commands.
type Connection struct {
	APIURL  string
	Timeout time.Duration
	Verbose bool
}

func (c *Connection) logger() *logger.Logger {
	// stdout занят формами, логи только в stderr
	level := logger.LevelError
	if c.Verbose {
		level = logger.LevelInfo
	}
	return logger.NewWithWriter(os.Stderr, level)
}

func (c *Connection) client(log bookingapi.Logger) *bookingapi.Client {
	return bookingapi.NewClient(c.APIURL, c.Timeout, log)
}
