package main

import "github.com/douglasroos/fcm/internal/cli"

func main() {
	cli.Execute()
}
