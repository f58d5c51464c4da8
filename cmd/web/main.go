package main

import "talentia_backend/internal/app"

func main() {
	app.Run()
}
