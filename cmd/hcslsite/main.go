// filepath: cmd/hcslsite/main.go
package main

import (
	"hcsl_site/internal/cli"
)

func main() {
	cli.Execute()
}
