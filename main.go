package main

import "golang-netman/cmd"

func main() {
	cmd.Execute()
}
