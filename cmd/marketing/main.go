package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(newCLI(os.Stdout)).Execute(); err != nil {
		logrus.WithError(err).Error("❌ Falha na execução")
		os.Exit(1)
	}
}
