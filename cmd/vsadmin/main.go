package main

import "github.com/vaultsafe98-afk/admin-panel/internal/console"

func main() {
	console.Execute()
}
