package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/eirikbell/videostore/config"
	"github.com/eirikbell/videostore/logger"
	"github.com/eirikbell/videostore/session"
)

func main() {
	configPath := flag.String("config", "statement.yaml", "path to the statement configuration file")
	flag.Parse()

	if err := run(*configPath, os.Stdout); err != nil {
		logger.Error("statement failed", "error", err)
		os.Exit(1)
	}
}

// run prints every customer's statement to out, separated by a blank line
func run(configPath string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	s, err := session.Build(cfg)
	if err != nil {
		return err
	}

	for i, c := range s.Customers() {
		statement, err := s.Render(c, cfg.Statement.Format)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, statement)
		logger.Info("statement rendered", "customer", c.Name(), "format", cfg.Statement.Format)
	}

	return nil
}
