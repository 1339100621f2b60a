package main

import "sportlog/cmd/sportlog-cli/cmd"

func main() {
	cmd.Execute()
}
