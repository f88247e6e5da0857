package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	yes "github.com/TheMaverickProgrammer/go-yes-parser"
	"github.com/TheMaverickProgrammer/go-yes-parser/yesparser"
)

var (
	fmtCmd = &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Re-serializes YES documents in canonical form",
		Long:  "Parses the given files and prints each element back out in canonical form: globals hoisted first, arguments joined with `, `, and quoting applied only where values contain whitespace.",
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
				if errs := doc.ErrorsIgnoring(yesparser.EolNoData); len(errs) > 0 {
					return yes.ParseErrors{File: file, Errors: errs}
				}
				for _, el := range doc.Elements() {
					if std, ok := el.(*yesparser.Standard); ok {
						for _, attr := range std.Attrs {
							fmt.Println((&yesparser.Attribute{Data: attr}).String())
						}
					}
					fmt.Println(el.String())
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(fmtCmd)
}
