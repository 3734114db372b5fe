package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/querif/querif/internal/config"
	"github.com/querif/querif/internal/graph"
	"github.com/querif/querif/internal/nl2sparql"
	"github.com/querif/querif/internal/server"
)

var version = "0.1.0"

var configPath string

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	rootCmd := &cobra.Command{
		Use:   "querif",
		Short: "Natural language questions over DBpedia",
		Long: `Querif turns natural language questions into SPARQL queries against
DBpedia and materializes the answers as RDF graphs.

It classifies each question, links its entities through DBpedia
Spotlight, generates a query suited to the question type, and can
convert the result bindings into a graph exported as Turtle or saved
to a graph database.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.toml")

	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	cfg := config.Default()
	cfg.ApplyEnv()
	return cfg, nil
}

func askCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question with a generated SPARQL query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pipeline, err := nl2sparql.FromConfig(cmd.Context(), cfg, profile)
			if err != nil {
				return err
			}

			query, results, err := pipeline.GenerateAndExecute(cmd.Context(), question)
			if err != nil {
				return err
			}
			if query == "" {
				fmt.Println("could not answer the question")
				return nil
			}

			fmt.Println(query)
			fmt.Println()
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "LLM profile to use")
	return cmd
}

func convertCmd() *cobra.Command {
	var (
		profile    string
		maxResults int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "convert [question]",
		Short: "Answer a question and convert the results to an RDF graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pipeline, err := nl2sparql.FromConfig(cmd.Context(), cfg, profile)
			if err != nil {
				return err
			}

			query, results, err := pipeline.GenerateAndExecute(cmd.Context(), question)
			if err != nil {
				return err
			}
			if query == "" {
				fmt.Println("could not answer the question")
				return nil
			}

			builder := graph.NewBuilder()
			builder.BuildFromResults(query, results, maxResults)

			fmt.Println(query)
			fmt.Println()
			fmt.Print(builder.Summary())

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := builder.WriteTurtle(f); err != nil {
					return err
				}
				fmt.Printf("graph written to %s\n", output)
			}

			if cfg.Sink.URI != "" {
				store, err := graph.NewStore(cfg.Sink.URI, cfg.Sink.User, cfg.Sink.Password)
				if err != nil {
					return err
				}
				defer store.Close(cmd.Context())
				groupID, err := store.SaveGraph(cmd.Context(), builder)
				if err != nil {
					return err
				}
				fmt.Printf("graph saved, group id %s\n", groupID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "LLM profile to use")
	cmd.Flags().IntVarP(&maxResults, "max-results", "n", 20, "result rows to materialize")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the graph as Turtle to a file")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}

			srv := server.NewServer(cfg)
			r := srv.SetupRouter()

			log.Printf("Starting server on port %s", port)
			return r.Run(":" + port)
		},
	}
}
