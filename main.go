package main

import "github.com/theirongolddev/freedom/cmd"

func main() {
	cmd.Execute()
}
