package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/app"
	"github.com/abhisek/learnpal/internal/audio"
	"github.com/abhisek/learnpal/internal/audio/portaudio"
	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/credentials"
	"github.com/abhisek/learnpal/internal/session"
	"github.com/abhisek/learnpal/internal/speech"
	"github.com/abhisek/learnpal/internal/speech/mic"
	"github.com/abhisek/learnpal/internal/store"
)

// runApp opens the event log, wires the gateway, audio, and speech
// services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	// The event log is optional at runtime; the TUI runs without it.
	var events store.EventRepo
	if st, err := store.Open(dbPath); err != nil {
		fmt.Fprintln(os.Stderr, "warning: event log unavailable:", err)
	} else {
		defer st.Close()
		if events, err = st.EventRepo(); err != nil {
			fmt.Fprintln(os.Stderr, "warning: event log unavailable:", err)
			events = nil
		}
	}

	tokenPath, err := credentials.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve credential path: %w", err)
	}
	tokens := credentials.NewFileStore(tokenPath)

	gateway := api.New(resolveAPIConfig(cmd), tokens)

	var player audio.Player
	if muted, _ := cmd.Flags().GetBool("mute"); !muted && os.Getenv("LEARNPAL_MUTE") == "" {
		p, err := portaudio.NewPlayer()
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: audio playback unavailable:", err)
			fmt.Fprintln(os.Stderr, "Tutor replies will be text only.")
		} else {
			defer p.Close()
			player = p
		}
	}
	pipeline := audio.NewPipeline(gateway, player)
	defer pipeline.Stop()

	voice := speech.NewCaptureService(func() (speech.Recognizer, error) {
		return mic.NewRecognizer(gateway)
	})
	defer voice.Stop()

	newConvo := func(learner api.Learner) *conversation.Session {
		return conversation.New(learner, gateway, pipeline, events)
	}
	ctrl := session.NewController(gateway, tokens, newConvo)

	return app.Run(app.Options{
		Controller: ctrl,
		Gateway:    gateway,
		Voice:      voice,
		Audio:      pipeline,
	})
}
