package main

import "passvault/cmd/passvault/cmd"

func main() {
	cmd.Execute()
}
