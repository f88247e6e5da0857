package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	yes "github.com/TheMaverickProgrammer/go-yes-parser"
	"github.com/TheMaverickProgrammer/go-yes-parser/yesparser"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [files...]",
		Short: "Parses YES documents and reports every line that fails",
		Long:  "Parses the given files, or every *.yes file under the configured directory, and reports each line that failed to parse. Blank lines are not reported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.StandardLogger()

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

			failed := 0
			for _, file := range files {
				doc, err := yes.ParseFile(file, literals...)
				if err != nil {
					return err
				}
				errs := doc.ErrorsIgnoring(yesparser.EolNoData)
				if len(errs) == 0 {
					logger.WithField("file", file).Infof("%d lines ok", doc.TotalLines)
					continue
				}
				failed++
				for _, le := range errs {
					logger.WithFields(logrus.Fields{
						"file": file,
						"line": le.Line,
						"code": le.Code.String(),
					}).Error(le.Message)
				}
			}

			if failed > 0 {
				return errors.New(fmt.Sprintf("%d of %d files had errors", failed, len(files)))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}
