package main

import (
	"log"

	"github.com/MSSkowron/LogUtils/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalln(err)
	}
}
