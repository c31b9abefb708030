package main

import (
	"flag"
	"os"

	"github.com/pterm/pterm"

	"enginedeck/pkg/compare"
	"enginedeck/pkg/config"
	"enginedeck/pkg/deck"
	"enginedeck/pkg/export"
	"enginedeck/pkg/inspect"
	"enginedeck/pkg/models"
	"enginedeck/pkg/renderer"
)

func main() {
	filename := flag.String("file", "", "engine data file to read")
	configFile := flag.String("config", "", "deck options YAML file")
	listVars := flag.Bool("list-vars", false, "list recognized variables and exit")
	inspectOnly := flag.Bool("inspect", false, "inspect the data file without building a deck")
	variable := flag.String("var", "", "variable to render (e.g. thrust, fuel_flow); empty for summary only")
	displayMode := flag.String("display", "values", "display mode: values, heatmap, or symbols")
	exportPath := flag.String("export", "", "write the processed deck to this CSV file")
	scaled := flag.Bool("scaled", false, "apply the resolved scale factor when exporting")
	compareFile := flag.String("compare", "", "second data file to compare against")
	flightIdle := flag.Bool("idle", false, "synthesize flight idle points")
	idleFraction := flag.Float64("idle-fraction", 0.05, "idle thrust fraction used with -idle")
	flag.Parse()

	if *listVars {
		renderer.ListVariables()
		return
	}

	if *filename == "" {
		pterm.Println("Usage: enginedeck -file <data.csv> [-config deck.yaml] [-var thrust] [-display values|heatmap|symbols]")
		pterm.Println("                  [-inspect] [-export out.csv [-scaled]] [-compare other.csv] [-idle [-idle-fraction 0.05]]")
		pterm.Println("       enginedeck -list-vars")
		os.Exit(1)
	}

	if *inspectOnly {
		if err := inspect.DataFile(*filename); err != nil {
			pterm.Error.Printf("Inspection failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := models.DefaultDeckOptions()
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			pterm.Error.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		opts = cfg.DeckOptions()
	}
	if *flightIdle {
		opts.GenerateFlightIdle = true
		opts.IdleThrustFraction = *idleFraction
	}

	d, err := deck.NewFromFile(*filename, opts)
	if err != nil {
		pterm.Error.Printf("Failed to build engine deck: %v\n", err)
		os.Exit(1)
	}

	if *compareFile != "" {
		other, err := deck.NewFromFile(*compareFile, opts)
		if err != nil {
			pterm.Error.Printf("Failed to build comparison deck: %v\n", err)
			os.Exit(1)
		}
		compare.Decks(d, other)
		return
	}

	if *exportPath != "" {
		if err := export.WriteCSV(d, *exportPath, *scaled); err != nil {
			pterm.Error.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
		pterm.Success.Printf("Deck written to %s\n", *exportPath)
		return
	}

	renderer.RenderSummary(d)

	if *variable != "" {
		kind, ok := models.LookupAlias(*variable)
		if !ok {
			pterm.Error.Printf("Unknown variable: %s\n", *variable)
			os.Exit(1)
		}
		pterm.Println()
		renderer.RenderVariable(d, kind, *displayMode)
	}
}
