package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"shrtnr/internal/agent"
	"shrtnr/internal/popup"
)

func main() {
	_ = godotenv.Load()

	headless := flag.Bool("headless", false, "run the background agent without the popup UI")
	stateDir := flag.String("state-dir", agent.StateDir(), "directory for settings and event log")
	initialURL := flag.String("url", "", "prefill the URL field")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ag := agent.New(*stateDir)

	if *headless {
		ag.Run(ctx)
		return
	}

	go ag.Run(ctx)

	p := tea.NewProgram(popup.New(ag, *initialURL), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
