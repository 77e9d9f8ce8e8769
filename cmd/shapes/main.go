// cmd/shapes/main.go
package main

import (
	"log"
	"os"

	"go-shape-canvas/internal/app"
	"go-shape-canvas/internal/config"
	"go-shape-canvas/internal/launcher"
)

func main() {
	inst, known := config.InstanceFromEnv()
	log.SetPrefix("[" + inst.AppID + "] ")
	if !known {
		log.Printf("unknown %s=%q, using %s", config.InstanceEnv, os.Getenv(config.InstanceEnv), inst.Mode)
	}

	if !config.IsSibling() {
		startSibling()
	}

	if err := app.Run(inst); err != nil {
		log.Printf("run: %v", err)
		os.Exit(1)
	}
}

// startSibling launches the circle instance next to this one. Its exit status
// is logged and never becomes ours.
func startSibling() {
	s, err := launcher.Start(config.CircleInstance)
	if err != nil {
		log.Printf("sibling: %v", err)
		return
	}
	log.Printf("sibling %s started, pid %d", s.Instance.AppID, s.Pid())
	go func() {
		code, err := s.Wait()
		if err != nil {
			log.Printf("sibling %s: %v", s.Instance.AppID, err)
			return
		}
		log.Printf("sibling %s exited with status %d", s.Instance.AppID, code)
	}()
}
