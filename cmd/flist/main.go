package main

import "flist/cmd/flist/cmd"

func main() {
	cmd.Execute()
}
