// Package main is the entry point for the inquiry CLI.
//
// inquiry walks a customer through the RhuMuda booking wizard in the
// terminal: customer details, reservation, other options and the
// confirmation card. It talks to the booking API over HTTP.
//
//	inquiry book --api-url http://localhost:8080
package main

import (
	"fmt"
	"os"

	"github.com/m04kA/RhuMuda-BookingService/cmd/inquiry/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
