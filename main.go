package main

import "github.com/niriutils/nirictl/cmd"

func main() {
	cmd.Execute()
}
