package main

import "github.com/dadrus/tst/cmd"

func main() {
	cmd.Execute()
}
