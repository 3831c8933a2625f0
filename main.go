package main

import "dev-server/cmd"

func main() {
	cmd.Execute()
}
