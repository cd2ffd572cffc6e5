package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/inkwell/internal/app"
	"github.com/dshills/inkwell/internal/script"
	"github.com/dshills/inkwell/internal/store"
)

var (
	docName  string
	noSave   bool
	showHist bool

	runCmd = &cobra.Command{
		Use:   "run [script.lua...]",
		Short: "Run Lua drawing scripts against a document",
		Long: `Run executes one or more Lua scripts against a document. With --doc the
document is loaded from the store before the scripts run and saved back
afterwards; without it the scripts start from an empty canvas.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScripts,
	}

	docsCmd = &cobra.Command{
		Use:   "docs",
		Short: "List documents in the store",
		Args:  cobra.NoArgs,
		RunE:  listDocs,
	}
)

func init() {
	runCmd.Flags().StringVar(&docName, "doc", "", "named document to load and save")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not save the document back after running")
	runCmd.Flags().BoolVar(&showHist, "history", false, "print the undo history after running")
}

func runScripts(cmd *cobra.Command, args []string) error {
	opts := []app.Option{app.WithLogger(logger)}

	var st *store.Store
	if docName != "" {
		var err error
		st, err = openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		doc, err := st.Load(docName)
		switch {
		case errors.Is(err, store.ErrNotFound):
			logger.Info("document not found, starting empty", "doc", docName)
		case err != nil:
			return err
		default:
			opts = append(opts, app.WithDocument(doc))
		}
	}

	session := app.New(cfg, opts...)

	eng, err := script.NewEngine(session, logger)
	if err != nil {
		return err
	}
	defer eng.Close()

	for _, path := range args {
		if err := eng.RunFile(path); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d shapes, %d selected, %d undoable edits\n",
		session.Document().Len(), session.Document().SelectionCount(), session.UndoCount())

	if showHist {
		for _, info := range session.UndoInfo() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n",
				info.Timestamp.Format("15:04:05"), info.Description)
		}
	}

	if st != nil && !noSave {
		if err := st.Save(docName, session.Document()); err != nil {
			return err
		}
		logger.Info("document saved", "doc", docName)
	}
	return nil
}

func listDocs(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	names, err := st.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func openStore() (*store.Store, error) {
	return store.Open(store.Options{
		Path:     cfg.Storage.Path,
		InMemory: cfg.Storage.InMemory,
		Logger:   logger,
	})
}
