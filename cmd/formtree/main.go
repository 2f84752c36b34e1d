package main

import (
	"os"

	"github.com/jacoelho/formtree"
	"github.com/jacoelho/formtree/internal/config"
	"github.com/jacoelho/formtree/internal/exit"
	"github.com/jacoelho/formtree/internal/form"
	"github.com/jacoelho/formtree/internal/output"
	"github.com/jacoelho/formtree/internal/query"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	exitResult = decode(cfg)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	return 0
}

func decode(cfg *config.Config) *exit.Result {
	input, err := cfg.Input()
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	defer input.Close()

	entries, err := form.Read(input, cfg.ContentType)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	doc, err := formtree.DecodeSlice(entries, formtree.Options{
		RemoveEmptyString: cfg.RemoveEmptyString,
	})
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	var value any = doc
	if cfg.Select != "" {
		results, err := query.Select(doc, cfg.Select)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		if len(results) == 1 {
			value = results[0]
		} else {
			value = results
		}
	}

	if err := output.Render(os.Stdout, value, cfg.Format, cfg.Indent); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	return nil
}
