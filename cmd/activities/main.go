package main

import (
	"github.com/joeydtaylor/steeze-activities/pkg/serverfx"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	fx.New(serverfx.Module(serverfx.DefaultOptions())).Run()
}
