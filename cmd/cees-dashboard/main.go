package main

import "github.com/ce-es/dashboard/internal/cli"

func main() {
	cli.Execute()
}
