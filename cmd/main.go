package main

import (
	"eldercare-manager-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Bootstrap failed: %v", err)
	}

	app.Run()
}
