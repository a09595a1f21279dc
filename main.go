package main

import "finchat/cmd"

func main() {
	cmd.Execute()
}
