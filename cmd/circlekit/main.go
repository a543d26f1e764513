package main

import "github.com/jhill1/circlekit/internal/cli"

func main() {
	cli.Execute()
}
