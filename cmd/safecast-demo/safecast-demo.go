// Package main cmd/safecast-demo/safecast-demo.go
package main

import "go.dw1.io/safecast/cmd/safecast-demo/commands"

func main() {
	commands.Execute()
}
