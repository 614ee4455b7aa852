package main

import "github.com/SunceWallet/txrep/cmd/txrep/cmd"

func main() {
	cmd.Execute()
}
