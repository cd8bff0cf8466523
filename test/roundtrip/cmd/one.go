package cmd

import (
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-vcard/card"
	"github.com/zostay/go-vcard/vcfile"
)

var oneCmd = &cobra.Command{
	Use:   "one file.vcf",
	Short: "Shows the diff of a single vCard file round-trip",
	Args:  cobra.ExactArgs(1),
	Run:   RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

func RunOne(cmd *cobra.Command, args []string) {
	path := args[0]

	text, err := vcfile.Read(path)
	cobra.CheckErr(err)

	col, err := card.ParseAll(text)
	cobra.CheckErr(err)

	rt := col.String()
	if rt == text {
		fmt.Printf("%s round-trips cleanly (%d cards)\n", path, col.Len())
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(text, rt, false)
	fmt.Print(dmp.DiffPrettyText(diffs))
	os.Exit(1)
}
