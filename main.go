package main

import "github.com/bkendall/husk/cmd"

func main() {
	cmd.Execute()
}
