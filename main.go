package main

import "github.com/sweep-scan/sweep/cmd"

func main() {
	cmd.Execute()
}
