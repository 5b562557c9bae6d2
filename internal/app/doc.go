// Package app provides the orchestration layer for backyard.
//
// # Overview
//
// This package is the composition root: it loads configuration and
// preferences, routes the standard logger, builds the eBird and email relay
// clients, and hands them to the UI.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml and env overrides
//	       ├─────> logging.Setup()      Debug log file or discard
//	       ├─────> prefs.Load()         Theme and last region
//	       ├─────> ebird.NewClient()    Observation API client
//	       ├─────> emailrelay.NewClient() Contact form relay
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Error Handling
//
// Bad config, an unusable log path, or an invalid relay URL are returned
// from Run. Fetch and send failures are not: the UI shows them in place.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("backyard failed: %v", err)
//	}
package app
