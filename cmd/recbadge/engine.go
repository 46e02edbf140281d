package main

import (
	"github.com/recbadge/recbadge/internal/logging"
)

// engineNotifier is the delegate used when the badge runs standalone. A real
// deployment hands recording.NewSession a handle to the recording engine;
// here the outgoing signals only land in the log.
type engineNotifier struct{}

func (engineNotifier) PauseRecording() {
	logging.InfoLogger.Println("Signaled engine: pause requested")
}

func (engineNotifier) ResumeRecording() {
	logging.InfoLogger.Println("Signaled engine: resume requested")
}

func (engineNotifier) StopRecording() {
	logging.InfoLogger.Println("Signaled engine: stop requested")
}
