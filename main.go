package main

import "biao/internal/cmd"

func main() {
	cmd.Execute()
}
