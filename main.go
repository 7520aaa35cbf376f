package main

import "github.com/julienpequegnot/curator/cmd"

func main() {
	cmd.Execute()
}
