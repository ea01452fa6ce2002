package main

import "encore.app/cmd/tablebill/cmd"

func main() {
	cmd.Execute()
}
