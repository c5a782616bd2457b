package main

import "github.com/notargets/gocst/cmd"

func main() {
	cmd.Execute()
}
