// Package main is the entry point for the shop-inventory server and CLI.
package main

import (
	"github.com/donaldgifford/shop-inventory/cmd/shop-inventory/cmd"
)

func main() {
	cmd.Execute()
}
