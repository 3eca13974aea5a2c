// Package headless runs a single fingerprint scan without a terminal UI.
//
// The headless executor suits CI jobs and scripted comparisons. It
// initializes the collector, runs one scan through the shared controller,
// prints a report and writes the configured artifacts:
//
//   - html: the result panel as a standalone page
//   - export: the record as JSON or YAML, with optional field redaction
//   - summary: a JSON run summary
//
// Example usage:
//
//	cfg := headless.DefaultConfig()
//	cfg.Artifacts.Export = "fingerprint.yaml"
//	cfg.Artifacts.Redact = []string{"canvas_*"}
//
//	exec, err := headless.NewExecutor(ctrl, p, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := exec.Run(ctx); err != nil {
//	    os.Exit(1)
//	}
package headless
