package main

import "github.com/evaldasg/md--betterspecs-org/cmd"

func main() {
	cmd.Execute()
}
