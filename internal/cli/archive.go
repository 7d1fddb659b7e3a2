package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treegraft/treegraft/pkg/archive"
	"github.com/treegraft/treegraft/pkg/config"
	apperrors "github.com/treegraft/treegraft/pkg/errors"
	"github.com/treegraft/treegraft/pkg/treeio"
)

// archiveCommand creates the archive command for managing saved trees.
func (c *CLI) archiveCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Manage the tree archive",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	cmd.AddCommand(c.archiveSaveCommand(&configPath))
	cmd.AddCommand(c.archiveListCommand(&configPath))
	cmd.AddCommand(c.archiveGetCommand(&configPath))
	cmd.AddCommand(c.archiveDeleteCommand(&configPath))

	return cmd
}

// withStore loads the config, connects to the archive, runs fn, and
// disconnects.
func withStore(ctx context.Context, configPath string, fn func(archive.Store) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	store, err := archive.NewMongoStore(ctx, archive.MongoConfig{
		URI:        cfg.Archive.MongoURI,
		Database:   cfg.Archive.Database,
		Collection: cfg.Archive.Collection,
	})
	if err != nil {
		return fmt.Errorf("connect archive: %w", err)
	}
	defer func() { _ = store.Close(context.Background()) }()
	return fn(store)
}

func (c *CLI) archiveSaveCommand(configPath *string) *cobra.Command {
	var name, from string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save a tree to the archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = args[0]
			}
			if err := apperrors.ValidateTreeName(name); err != nil {
				return err
			}
			t, err := readTreeFile(args[0], from)
			if err != nil {
				return err
			}
			return withStore(cmd.Context(), *configPath, func(store archive.Store) error {
				doc := archive.NewDocument(name, treeio.FromTree(t))
				if err := store.Put(cmd.Context(), doc); err != nil {
					return err
				}
				printSuccess("Saved %q", name)
				printKeyValue("ID", doc.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "document name (defaults to the file path)")
	cmd.Flags().StringVar(&from, "from", "", "input format: newick, json (default: by extension)")

	return cmd
}

func (c *CLI) archiveListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(store archive.Store) error {
				docs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(docs) == 0 {
					printInfo("Archive is empty")
					return nil
				}
				for _, doc := range docs {
					fmt.Printf("%s  %s\n", doc.ID, StyleValue.Render(doc.Name))
					printDetail("%d nodes, %d edges, saved %s",
						len(doc.Tree.Nodes), len(doc.Tree.Edges),
						doc.CreatedAt.Local().Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	}
}

func (c *CLI) archiveGetCommand(configPath *string) *cobra.Command {
	var output, to string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a saved tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(store archive.Store) error {
				doc, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				t, err := treeio.ToTree(doc.Tree)
				if err != nil {
					return err
				}
				if to == "" && output == "" {
					to = "json"
				}
				return writeTree(t, output, to)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&to, "to", "", "output format: newick, json")

	return cmd
}

func (c *CLI) archiveDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), *configPath, func(store archive.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("Deleted %s", args[0])
				return nil
			})
		},
	}
}
