// cmd/fengdoolittle/main.go
package main

import (
	"phylo/internal/appshell"
	"phylo/internal/fdapp"
)

func main() { appshell.Main(fdapp.RunContext) }
