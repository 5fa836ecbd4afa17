package main

import (
	"context"
	"log"
	"os"

	"github.com/NVIDIA/meal-catalog/pkg/api"
)

func main() {
	if err := api.Serve(context.Background(), os.Getenv("MEALS_CATALOG")); err != nil {
		log.Fatal(err)
	}
}
