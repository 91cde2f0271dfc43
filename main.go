package main

import "github.com/mosorio19/Lomito/cmd"

func main() {
	cmd.Run()
}
