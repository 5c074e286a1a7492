package main

import "github.com/notargets/gokinetic/cmd"

func main() {
	cmd.Execute()
}
