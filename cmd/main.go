package main

import (
	"os"

	"plinko_backend/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		os.Exit(1)
	}
}
