package main

import "github.com/dhenderson/gameday-events/internal/cli"

func main() {
	cli.Execute()
}
