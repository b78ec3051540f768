package main

import "craftstore/cmd"

func main() {
	cmd.Execute()
}
