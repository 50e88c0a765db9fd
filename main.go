package main

import "github.com/coincli/coincli/cmd"

func main() {
	cmd.Execute()
}
