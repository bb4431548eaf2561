package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/go-hsc/pkg/hsc"
	"github.com/cwbudde/go-hsc/types"
)

var (
	targetName   string
	optimization int
	dumpFormat   string
	outputFile   string
	watchFiles   bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [files...]",
	Short: "Compile script sources into the engine node graph",
	Long: `Compile one or more script sources as a single translation unit.

The files are loaded in the order given, so later files may call scripts
and reference globals declared in earlier ones and vice versa.

Examples:
  # Validate a script against the Custom Edition builtin set
  hsc compile --target gbx-custom mission.hsc

  # Compile two files as one unit and dump the node graph
  hsc compile --dump json init.hsc mission.hsc

  # Recompile whenever a source changes
  hsc compile --watch mission.hsc`,
	Args: cobra.MinimumNArgs(1),
	RunE: compileScripts,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&targetName, "target", "t", "any", "engine target (any, xbox, gbx-retail, gbx-demo, gbx-custom, mcc-cea)")
	compileCmd.Flags().IntVarP(&optimization, "optimization", "O", 0, "optimization level (0-3)")
	compileCmd.Flags().StringVar(&dumpFormat, "dump", "", "dump the compiled arrays (json or yaml)")
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the dump to a file instead of stdout")
	compileCmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "recompile whenever a source file changes")
}

func compileScripts(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = dev
	}
	defer logger.Sync()

	target, ok := types.CompileTargetFromString(targetName)
	if !ok {
		return fmt.Errorf("unknown target %q", targetName)
	}
	if optimization < int(types.OptimizationParanoid) || optimization > int(types.OptimizationAggressive) {
		return fmt.Errorf("optimization level must be between 0 and 3, got %d", optimization)
	}

	if watchFiles {
		return watchAndCompile(args, target, logger)
	}

	return compileOnce(args, target, logger)
}

// compileOnce runs a full load + compile cycle over the given files,
// printing any diagnostic with source context.
func compileOnce(files []string, target types.CompileTarget, logger *zap.Logger) error {
	instance := hsc.New(target,
		hsc.WithOptimizationLevel(types.OptimizationLevel(optimization)),
		hsc.WithWarnFunc(func(_ *hsc.Instance, message, file string, line, column int) {
			fmt.Fprintf(os.Stderr, "warning: %s:%d:%d: %s\n", file, line, column, message)
		}),
	)

	sources := make(map[string]string, len(files))
	start := time.Now()

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", file, err)
		}
		sources[file] = string(data)

		if err := instance.LoadSource(data, file); err != nil {
			printDiagnostic(instance, sources)
			return err
		}
		logger.Debug("loaded source", zap.String("file", file), zap.Int("bytes", len(data)))
	}

	if err := instance.Compile(); err != nil {
		printDiagnostic(instance, sources)
		return err
	}

	logger.Info("compiled",
		zap.Int("nodes", len(instance.Nodes())),
		zap.Int("scripts", len(instance.Scripts())),
		zap.Int("globals", len(instance.Globals())),
		zap.Duration("elapsed", time.Since(start)),
	)

	if dumpFormat != "" {
		return dumpArrays(instance)
	}

	fmt.Printf("Compiled %d script%s and %d global%s into %d node%s\n",
		len(instance.Scripts()), pluralSuffix(len(instance.Scripts())),
		len(instance.Globals()), pluralSuffix(len(instance.Globals())),
		len(instance.Nodes()), pluralSuffix(len(instance.Nodes())))
	return nil
}

// watchAndCompile compiles once, then recompiles whenever one of the source
// files changes. Runs until interrupted.
func watchAndCompile(files []string, target types.CompileTarget, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, file := range files {
		if err := watcher.Add(file); err != nil {
			return fmt.Errorf("failed to watch %s: %w", file, err)
		}
	}

	runOnce := func() {
		if err := compileOnce(files, target, logger); err != nil {
			fmt.Fprintln(os.Stderr, "compile failed")
		}
	}
	runOnce()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("source changed", zap.String("file", event.Name))
			runOnce()

			// Editors replace files on save; re-add so the watch survives.
			watcher.Add(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

// printDiagnostic renders the instance's last diagnostic with the offending
// source line and caret.
func printDiagnostic(instance *hsc.Instance, sources map[string]string) {
	diag := instance.LastError()
	if diag == nil {
		return
	}
	fmt.Fprintln(os.Stderr, diag.Format(sources[diag.File], true))
}

// dumpArrays serializes the compiled arrays for downstream tooling.
func dumpArrays(instance *hsc.Instance) error {
	dump := buildDump(instance)

	var data []byte
	var err error
	switch dumpFormat {
	case "json":
		data, err = json.MarshalIndent(dump, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(dump)
	default:
		return fmt.Errorf("unknown dump format %q (expected json or yaml)", dumpFormat)
	}
	if err != nil {
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, data, 0644)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
