package main

import "github.com/dzjyyds666/toml2json/cmd"

func main() {
	cmd.Execute()
}
