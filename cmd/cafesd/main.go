package main

import "cafes-backend/cmd/cafesd/commands"

func main() {
	commands.Execute()
}
