package main

import (
	"github.com/jjtimmons/rosalind/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
