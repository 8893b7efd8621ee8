package main

import "github.com/unStatiK/RSocket-sandbox/cmd"

func main() {
	cmd.Execute()
}
