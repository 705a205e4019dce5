package main

import (
	"embed"
	"log"
	"os"
	"path/filepath"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

// defaultDBPath picks a per-user location for the trajectory database.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "wallplan.db"
	}
	return filepath.Join(dir, "wallplan", "trajectories.db")
}

func main() {
	dbPath := defaultDBPath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Printf("config dir: %v", err)
		dbPath = "wallplan.db"
	}

	app := NewApp(dbPath)

	err := wails.Run(&options.App{
		Title:  "wallplan",
		Width:  1200,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  app.startup,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}
