package main

import "github.com/ezfinancial/go-entry-engine/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
