package main

import "quest/cmd"

func main() {
	cmd.Execute()
}
