package main

import "lab_hours_bot/internal/cli"

func main() {
	cli.Execute()
}
