package main

import "github.com/nathanjohnson320/portfolio/cmd"

func main() {
	cmd.Execute()
}
