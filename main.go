package main

import "limeal.fr/quiltgo/cmd"

func main() {
	cmd.Execute()
}
