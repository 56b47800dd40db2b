package main

import "proto-manager/cmd"

func main() {
	cmd.Execute()
}
