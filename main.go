package main

import (
	"fmt"
	"os"

	"seldeck/export"
)

const (
	assetsDir  = "assets"
	outputPath = "Selenium_Automation_Framework_AI_Healing.pptx"
)

func main() {
	service := export.NewDeckExportService()

	data, err := service.ExportFrameworkDeck(assetsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building deck: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}

	fmt.Printf("Created: %s\n", outputPath)
}
