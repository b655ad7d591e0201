package main

import "github.com/hipolitesport/roster/internal/cli"

func main() {
	cli.Execute()
}
