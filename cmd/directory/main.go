package main

import "github.com/cleitonmarx/symbiont-ai-directory/internal/app"

func main() {
	err := app.NewDirectoryApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
