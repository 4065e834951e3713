package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/tubedl/internal/bootstrap"
	"github.com/ytget/tubedl/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.tubedl"
	AppName = "TubeDL"
)

func main() {
	env, err := bootstrap.Load("", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}

	log.Info().Str("op", "main").Str("version", version).Msg("TubeDL starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTubeTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	rootUI := ui.NewRootUI(myApp, myWindow, env.Prefs, env.Policy())
	svc, closeFn := env.NewService(rootUI)
	defer closeFn()
	rootUI.SetService(svc)

	myWindow.ShowAndRun()
	if state := svc.State(); state.IsActive() {
		log.Info().Str("op", "main").Str("state", state.String()).Msg("Window closed, waiting for the running download")
	}
	svc.Wait()
}
