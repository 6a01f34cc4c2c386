// newsctl is the operator's tool for managing newswire content over the
// public API. It uses the same client package the site frontend would.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"newswire/client"
)

var apiAddr string

var rootCmd = &cobra.Command{
	Use:   "newsctl",
	Short: "Manage newswire articles and categories",
	Long: `newsctl manages content on a running newswire API server.

It talks to the same REST endpoints the website uses; nothing here bypasses
validation or touches the database directly.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "addr", envOr("NEWSWIRE_ADDR", "http://localhost:8080"), "API server base URL")

	rootCmd.AddCommand(articleCmd, categoryCmd)

	articleCmd.AddCommand(articleListCmd, articleCreateCmd, articleDeleteCmd, articlePublishCmd, articleLikeCmd)
	articleListCmd.Flags().String("category", "", "filter by category label")
	articleListCmd.Flags().Bool("drafts", false, "show unpublished articles only")
	articleCreateCmd.Flags().String("title", "", "article title")
	articleCreateCmd.Flags().String("author", "", "article author")
	articleCreateCmd.Flags().String("category", "", "category label")
	articleCreateCmd.Flags().String("content", "", "article body (reads stdin when omitted)")
	articleCreateCmd.Flags().StringSlice("tags", nil, "comma-separated tags")
	articleCreateCmd.Flags().Bool("publish", false, "publish immediately")

	categoryCmd.AddCommand(categoryListCmd, categoryCreateCmd)
	categoryCreateCmd.Flags().String("name", "", "category name")
	categoryCreateCmd.Flags().String("description", "", "category description")
	categoryCreateCmd.Flags().String("color", "", "display color token")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func api() *client.Client {
	return client.New(strings.TrimRight(apiAddr, "/"))
}

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Manage articles",
}

var articleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := client.ArticleFilter{}
		filter.Category, _ = cmd.Flags().GetString("category")
		if drafts, _ := cmd.Flags().GetBool("drafts"); drafts {
			published := false
			filter.Published = &published
		}

		articles, err := api().ListArticles(cmd.Context(), filter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tAUTHOR\tVIEWS\tLIKES\tPUBLISHED")
		for _, a := range articles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%t\n",
				a.ID, a.Title, a.Category, a.Author, a.Views, a.Likes, a.Published)
		}
		return w.Flush()
	},
}

var articleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an article",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := client.NewArticle{}
		in.Title, _ = cmd.Flags().GetString("title")
		in.Author, _ = cmd.Flags().GetString("author")
		in.Category, _ = cmd.Flags().GetString("category")
		in.Content, _ = cmd.Flags().GetString("content")
		in.Tags, _ = cmd.Flags().GetStringSlice("tags")
		in.Published, _ = cmd.Flags().GetBool("publish")

		if in.Content == "" {
			body, err := readStdin(cmd)
			if err != nil {
				return err
			}
			in.Content = body
		}

		a, err := api().CreateArticle(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created article %s\n", a.ID)
		return nil
	},
}

var articleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api().DeleteArticle(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted article %s\n", args[0])
		return nil
	},
}

var articlePublishCmd = &cobra.Command{
	Use:   "publish <id>",
	Short: "Mark an article as published",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		published := true
		a, err := api().UpdateArticle(cmd.Context(), args[0], client.ArticlePatch{Published: &published})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published article %s (%s)\n", a.ID, a.Title)
		return nil
	},
}

var articleLikeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Add a like to an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		likes, err := api().LikeArticle(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "article %s now has %d likes\n", args[0], likes)
		return nil
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := api().ListCategories(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tCOLOR")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Slug, c.Color)
		}
		return w.Flush()
	},
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := client.NewCategory{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.Description, _ = cmd.Flags().GetString("description")
		in.Color, _ = cmd.Flags().GetString("color")

		c, err := api().CreateCategory(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created category %s (slug %s)\n", c.ID, c.Slug)
		return nil
	},
}

func readStdin(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read article body from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
