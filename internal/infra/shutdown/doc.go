// Package shutdown ties process termination signals to a context.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	app.RunContext(ctx, os.Args)
package shutdown
