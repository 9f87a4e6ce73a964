package main

import "github.com/valpere/logreturn/cmd"

func main() {
	cmd.Execute()
}
