package main

import (
	"log"

	"github.com/cleitonmarx/bomi/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("bomi: no .env file loaded: %v", err)
	}

	err := app.NewBomiApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
