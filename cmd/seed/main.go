package main

import (
	"context"
	"os"

	"varausjarjestelma-be/internal/config"
	"varausjarjestelma-be/internal/dao"
	"varausjarjestelma-be/internal/entity"
	"varausjarjestelma-be/internal/pkg/logger"
	"varausjarjestelma-be/internal/tracer"

	"github.com/fatih/color"
)

// Default features offered by reservable rooms
var defaultOminaisuudet = []entity.Ominaisuus{
	{Nimi: "Wifi", Kuvaus: "Wireless access"},
	{Nimi: "Projektori", Kuvaus: "Ceiling-mounted projector with HDMI input"},
	{Nimi: "Valkotaulu", Kuvaus: "Whiteboard and markers"},
	{Nimi: "Videoneuvottelu", Kuvaus: "Camera, microphone and display for remote meetings"},
	{Nimi: "Esteettömyys", Kuvaus: "Step-free access and accessible toilet"},
	{Nimi: "Kahvinkeitin", Kuvaus: "Coffee maker available in the room"},
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	defer sysLogger.Sync()

	ctx := context.Background()

	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(ctx)

	store := dao.Open(ctx, cfg, sysLogger)
	defer store.Close()

	color.Cyan("Seeding ominaisuus catalog...")

	existing := make(map[string]bool)
	all := store.FindAll(ctx)
	if all == nil {
		color.Red("Could not read existing ominaisuudet, aborting")
		return 1
	}
	for _, o := range all {
		existing[o.Nimi] = true
	}

	created, failed := 0, 0
	for _, o := range defaultOminaisuudet {
		if existing[o.Nimi] {
			color.Yellow("Ominaisuus '%s' already exists, skipping...", o.Nimi)
			continue
		}

		record := o
		if !store.Insert(ctx, &record) {
			color.Red("Failed to create ominaisuus '%s'", o.Nimi)
			failed++
			continue
		}
		color.Green("Created ominaisuus: %s (id %d)", record.Nimi, record.Id)
		created++
	}

	color.Cyan("Ominaisuus seeding completed: %d created, %d failed", created, failed)
	if failed > 0 {
		return 1
	}
	return 0
}
