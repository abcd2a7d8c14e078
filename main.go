package main

import (
	"github.com/foomo/skeletonio/cmd"
)

func main() {
	cmd.Execute()
}
