package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
