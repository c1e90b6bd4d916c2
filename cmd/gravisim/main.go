package main

import (
	"log"

	"gravisim/internal/debug"
	"gravisim/internal/graphics"
	"gravisim/internal/hud"
	"gravisim/internal/input"
	"gravisim/internal/logger"
	"gravisim/internal/sandbox"
	"gravisim/internal/scene"
	"gravisim/internal/settings"
)

func main() {
	eventLog := logger.New()

	prefs, err := settings.Load(settings.Path)
	if err != nil {
		eventLog.Log("settings load failed: " + err.Error())
		prefs = settings.Default()
	}
	if !settings.Exists(settings.Path) {
		if err := settings.Save(settings.Path, prefs); err != nil {
			eventLog.Log("could not write settings: " + err.Error())
		} else {
			eventLog.Log("wrote default settings to " + settings.Path)
		}
	}

	st := sandbox.New(prefs, eventLog)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	update := func(dt float32) {
		st.Step(input.Poll(), dt)
	}
	draw := func() {
		scene.Draw(st)
		hud.Draw(st)
		dbg.Draw()
	}

	eventLog.Log("starting gravisim")
	if err := graphics.Run(update, draw); err != nil {
		log.Fatal(err)
	}
}
