package main

import "github.com/alexferrari88/dirwalk/cmd"

func main() {
	cmd.Execute()
}
