package main

import (
	"bufio"
	"log"
	"os"

	storagemanager "github.com/fatih-iver/Storage-Manager"
	"github.com/fatih-iver/Storage-Manager/command"
	"github.com/fatih-iver/Storage-Manager/config"
	"go.uber.org/dig"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	container := dig.New()
	constructors := []interface{}{
		func() (config.Config, error) {
			return config.LoadConfig(args)
		},
		newLogger,
		openDB,
		command.NewInterpreter,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return container.Invoke(func(cfg config.Config, db *storagemanager.DB, it *command.Interpreter) error {
		defer db.Close()
		return execute(cfg, it)
	})
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "storagemanager: ", log.LstdFlags)
}

func openDB(cfg config.Config, logger *log.Logger) (*storagemanager.DB, error) {
	opts := append(cfg.Options(), storagemanager.WithLogger(logger))
	return storagemanager.Open(cfg.DataDir, opts...)
}

func execute(cfg config.Config, it *command.Interpreter) error {
	in, err := os.Open(cfg.InputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err = it.Run(in, w); err != nil {
		_ = w.Flush()
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	return out.Sync()
}
