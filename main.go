package main

import "storage-console/cmd"

func main() {
	cmd.Execute()
}
