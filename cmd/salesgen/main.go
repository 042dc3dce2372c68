package main

import "github.com/matthieukhl/salesgen/internal/cmd"

func main() {
	cmd.Execute()
}
