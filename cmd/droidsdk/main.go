package main

import "droidsdk/internal/cli"

func main() {
	cli.Execute()
}
