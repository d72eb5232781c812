package main

import "themeforge/internal/cli"

func main() {
	cli.Execute()
}
