package main

import "bank-documents/cli"

func main() {
	cli.Execute()
}
