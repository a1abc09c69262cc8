// cmd/abnum/main.go
package main

import (
	"abnum/internal/app"
	"abnum/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
