package main

import "github.com/lunchsim/lunchsim/cmd"

func main() {
	cmd.Execute()
}
