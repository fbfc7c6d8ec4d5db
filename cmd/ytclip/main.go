package main

import "ytclip/internal/cli"

func main() {
	cli.Main()
}
