// Command cropper is the desktop crop tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/dixieflatline76/Cropper/config"
	"github.com/dixieflatline76/Cropper/ui"
	"github.com/dixieflatline76/Cropper/util/log"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [FILE]\n\nOpens FILE (an image or video) for cropping when given.\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}

	acquired, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running.", config.AppName)
		os.Exit(1)
	}
	defer releaseLock()

	a := app.NewWithID("com.dixieflatline76." + config.ServiceName)
	cfg := config.NewAppConfig(a.Preferences())

	ca, err := ui.NewCropperApp(a, cfg)
	if err != nil {
		log.Fatalf("Failed to start %s: %v", config.AppName, err)
	}
	log.Printf("%s %s starting", config.AppName, config.AppVersion)
	ca.Run(flag.Arg(0))
}
