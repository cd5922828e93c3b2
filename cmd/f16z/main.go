package main

import "github.com/arloliu/f16z/internal/cli"

func main() {
	cli.Execute()
}
