package commands

import (
	"bufio"
	"fmt"
	"os"

	"instacreators-backend/cmd/instacreators-cli/utils"
	"instacreators-backend/lib/commentclass"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify [comment]",
	Short: "Classifies a single comment, or one comment per stdin line when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			fmt.Println(commentclass.Classify(args[0]))
			return
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"comment", "category"})

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			t.AppendRow(table.Row{line, commentclass.Classify(line).String()})
		}
		if err := scanner.Err(); err != nil {
			fatal("failed to read stdin", err)
		}
		t.Render()
	},
}
