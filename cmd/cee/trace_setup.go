package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cee/internal/trace"
)

var activeTracer trace.Tracer = trace.Nop

// setupTracing inspects trace-related flags and cee.toml and attaches a
// tracer to the command context. It returns a cleanup function.
func setupTracing(cmd *cobra.Command, manifest *projectManifest) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	if manifest != nil {
		cfg := manifest.Config.Trace
		if !flags.Changed("trace-level") && cfg.Level != "" {
			levelStr = cfg.Level
		}
		if !flags.Changed("trace") && cfg.Output != "" {
			traceOutput = cfg.Output
		}
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня означает phase
	if level == trace.LevelOff && traceOutput != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace format: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer

	root, ctx := trace.BeginCtx(trace.WithTracer(cmd.Context(), tracer), trace.ScopeDriver, "cee "+cmd.Name())
	cmd.SetContext(ctx)

	return func() {
		root.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

// dumpTrace prints the ring buffer, if any, after a failed run.
func dumpTrace(cmd *cobra.Command) {
	if !activeTracer.Enabled() {
		return
	}
	fmt.Fprintln(os.Stderr, "--- trace (last events) ---")
	if err := trace.DumpRing(activeTracer, os.Stderr, trace.FormatText); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
	}
}
