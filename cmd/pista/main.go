package main

import "pista/cmd/pista/cmd"

func main() {
	cmd.Execute()
}
