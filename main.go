package main

import "github.com/advisorly/advisor-session/cmd"

func main() {
	cmd.Execute()
}
