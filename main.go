package main

import "paylens/cmd"

func main() {
	cmd.Execute()
}
