package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	yes "github.com/TheMaverickProgrammer/go-yes-parser"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump [files...]",
		Short: "Prints the parse tree of YES documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := findFiles(args)
			if err != nil {
				return err
			}
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			literals, err := config.LiteralSet()
			if err != nil {
				return err
			}

			for _, file := range files {
				doc, err := yes.ParseFile(file, literals...)
				if err != nil {
					return err
				}
				fmt.Println("==", file)
				for _, r := range doc.Results() {
					if r.Err != nil {
						fmt.Printf("%4d! %s\n", r.Line, r.Err.Message)
						continue
					}
					fmt.Printf("%4d: %s\n", r.Line, repr.String(r.Data))
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}
