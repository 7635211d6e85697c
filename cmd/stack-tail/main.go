package main

import (
	"context"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/stack-tail/internal/app"
)

func main() {
	cmd := newRootCmd(viper.New(), app.BuildApplicationFromViper)
	if err := execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}
