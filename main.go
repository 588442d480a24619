package main

import "github.com/jeffrydegrande/quietly/cmd"

func main() {
	cmd.Execute()
}
