// cmd/phyltree/main.go
package main

import (
	"phylo/internal/appshell"
	"phylo/internal/treeapp"
)

func main() { appshell.Main(treeapp.RunContext) }
