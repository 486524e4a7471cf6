package main

import "github.com/IamAraragi/sha256-go/cmd/shasum/cmd"

func main() {
	cmd.Execute()
}
