package main

import "github.com/wortkiste/wortkiste/cmd"

func main() {
	cmd.Execute()
}
