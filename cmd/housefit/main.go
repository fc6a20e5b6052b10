package main

import "github.com/emiliopalmerini/housefit/internal/cli"

func main() {
	cli.Execute()
}
