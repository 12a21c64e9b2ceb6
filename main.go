package main

import "github.com/fuzumoe/domsight-api/cmd"

func main() {
	cmd.Execute()
}
