package main

import "github.com/jeanpaul/ppl/internal/cli"

func main() {
	cli.Execute()
}
