package main

import (
	cmd "github.com/rohmanhakim/fixturegen/internal/cli"
)

func main() {
	cmd.Execute()
}
