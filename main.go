package main

import (
	"example.com/fleetdesk/cmd"
)

func main() {
	cmd.Execute()
}
