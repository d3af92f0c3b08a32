package main

import (
	"github.com/cleitonmarx/moodasana/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	err := app.NewMoodAsanaApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
