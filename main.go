package main

import "devsecops-app/cmd"

func main() {
	cmd.Execute()
}
