package main

import "github.com/faizmokh/nadi/internal/cli"

func main() {
	cli.Main()
}
