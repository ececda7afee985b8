// cmd/clustalw/main.go
package main

import (
	"phylo/internal/appshell"
	"phylo/internal/clustalwapp"
)

func main() { appshell.Main(clustalwapp.RunContext) }
