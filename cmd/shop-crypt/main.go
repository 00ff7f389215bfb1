// Package main is the entry point for shop-crypt, the secret table tool.
package main

import (
	"github.com/donaldgifford/shop-inventory/cmd/shop-crypt/cmd"
)

func main() {
	cmd.Execute()
}
