package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"go-home.io/x/neato/server"
	"go-home.io/x/neato/settings"
	"go-home.io/x/neato/systems/device"
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}

	s, err := settings.Load(options)
	if err != nil {
		panic(err)
	}

	s.SystemLogger().Info("Starting neato cleaning maps")

	updates := make(chan *device.UpdateEvent, 100)
	cameras, err := device.LoadHub(&device.ConstructHub{
		Settings:          s,
		StatusUpdatesChan: updates,
	})
	if err != nil {
		s.SystemLogger().Fatal("Failed to load neato hub", err)
	}

	srv, err := server.NewServer(&server.ConstructServer{
		Settings:          s,
		Cameras:           cameras,
		StatusUpdatesChan: updates,
	})
	if err != nil {
		s.SystemLogger().Fatal("Failed to start server", err)
	}

	srv.Start()
}
