package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"quest/internal/clix"
)

var (
	listLimit  int
	listOffset int
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored questions",
	Long:  `Displays a page of questions from the primary database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return err
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		questions, err := appInstance.QuestionService.List(cmd.Context(), pagination.Limit, pagination.Offset)
		if err != nil {
			return fmt.Errorf("failed to list questions: %w", err)
		}

		if len(questions) == 0 {
			fmt.Println("No questions found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Tags", "Content"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, q := range questions {
			snippet := strings.ReplaceAll(q.Content, "\n", " ")
			if len(snippet) > 80 {
				snippet = snippet[:80] + "..."
			}
			table.Append([]string{
				strconv.Itoa(q.ID),
				q.Title,
				strings.Join(q.Tags, ", "),
				snippet,
			})
		}
		table.Render()

		fmt.Printf("%s %d questions (offset %d)\n",
			color.GreenString("Displayed"), len(questions), pagination.Offset)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of questions to display")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of questions to skip")
}
