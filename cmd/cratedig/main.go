package main

import "github.com/fraserlangton/cratedigger/cmd/cratedig/cmd"

func main() {
	cmd.Execute()
}
