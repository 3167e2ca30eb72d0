// cmd/kmap/main.go
package main

import (
	"kmap/internal/app"
	"kmap/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
