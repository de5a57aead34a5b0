package main

import "agcost/cmd"

func main() {
	cmd.Execute()
}
