package main

import "github.com/golangdaddy/roadster/cmd"

func main() {
	cmd.Execute()
}
