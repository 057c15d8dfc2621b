package main

import "bunny-video/cmd"

func main() {
	cmd.Execute()
}
