package main

import "sdk-formatter/internal/cli"

func main() {
	cli.Execute()
}
