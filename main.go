package main

import (
	"log"

	"yashubustudio/reviewer/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("reviewer: %v", err)
	}
}
