package main

import "github.com/Digital-Shane/tab-pager/internal/cmd"

func main() {
	cmd.Execute()
}
