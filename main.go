package main

import "github.com/MGhiremath0281/Apex-Money/cmd"

func main() {
	cmd.Execute()
}
