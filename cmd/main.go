package main

import (
	"fmt"

	"github.com/FranklinWilson/api-orchestrator/internal/api"
	"github.com/FranklinWilson/api-orchestrator/internal/logger"
)

func main() {
	err := api.RunAPI()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run api orchestrator: %v", err))
	}
}
