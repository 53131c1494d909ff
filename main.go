package main

import "lyrictranslator/cmd"

func main() {
	cmd.Execute()
}
