// Command nwdemo is a minimal host application exercising the public
// nativewindow façade: it opens a window, wires a typed channel with a
// small schema, and drives the event pump until the window closes.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nwkit/nativewindow/internal/logging"
	"github.com/nwkit/nativewindow/pkg/nativewindow"
)

var log = logging.NewFromEnv().With().Str("component", "nwdemo").Logger()

var rootCmd = &cobra.Command{
	Use:   "nwdemo",
	Short: "Demo host for the nativewindow library",
	Long: `nwdemo opens a single native window with an embedded webview and a
typed IPC channel, and pumps its event loop until the window is closed.`,
}

var demoURL string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a demo window and pump events until it closes",
	RunE:  runDemo,
}

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Check whether the platform webview runtime is available",
	RunE:  runRuntimeCheck,
}

func init() {
	runCmd.Flags().StringVar(&demoURL, "url", "https://example.com", "URL to load on start")
	rootCmd.AddCommand(runCmd, runtimeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// greetPayload is the schema for the "greet" event a page can send to the
// host and the host can send back.
type greetPayload struct {
	Name string `json:"name"`
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if _, err := nativewindow.EnsureRuntime(); err != nil {
		log.Warn().Err(err).Msg("webview runtime unavailable, continuing anyway")
	}

	if err := nativewindow.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	w, err := nativewindow.New(nativewindow.WindowOptions{
		Title:  "nwdemo",
		Width:  1024,
		Height: 768,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	closed := make(chan struct{})
	w.SetHandlers(nativewindow.EventHandlers{
		OnClose: func() { close(closed) },
	})

	ch, err := w.NewChannel(nativewindow.ChannelOptions{
		Schemas: nativewindow.SchemaMap{
			"greet": nativewindow.StructSchema[greetPayload](),
		},
		InjectClient: true,
	})
	if err != nil {
		return fmt.Errorf("create channel: %w", err)
	}
	ch.On("greet", func(payload any) {
		p, ok := payload.(greetPayload)
		if !ok {
			return
		}
		log.Info().Str("name", p.Name).Msg("received greet")
		_ = ch.Send("greet", greetPayload{Name: "nwdemo"})
	})

	if err := w.LoadURL(demoURL); err != nil {
		return fmt.Errorf("load url: %w", err)
	}

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return nil
		case <-ticker.C:
			if err := nativewindow.PumpEvents(); err != nil {
				return fmt.Errorf("pump events: %w", err)
			}
		}
	}
}

func runRuntimeCheck(_ *cobra.Command, _ []string) error {
	info := nativewindow.CheckRuntime()
	log.Info().
		Bool("available", info.Available).
		Str("version", info.Version).
		Str("platform", info.Platform).
		Msg("runtime status")
	if !info.Available {
		return fmt.Errorf("webview runtime not available on this machine")
	}
	return nil
}
