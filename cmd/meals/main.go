package main

import (
	"github.com/NVIDIA/meal-catalog/pkg/cli"
)

func main() {
	cli.Execute()
}
