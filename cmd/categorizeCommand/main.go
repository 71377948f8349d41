package categorizeCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/t-aoki/kumitate/domain/repository/apidoc"
	"github.com/t-aoki/kumitate/domain/repository/file"
	"github.com/t-aoki/kumitate/domain/service/categorize"
)

type CategorizeCommand struct {
	CobraCommand *cobra.Command
}

func NewCategorizeCommand(
	apidocRepository apidoc.Repository,
	fileRepository file.Repository,
	categorizeService *categorize.CategorizeService,
) *CategorizeCommand {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "categorize [docsFile]",
		Short: "Annotate parsed API docs with derived flags",
		Long: `Read a parsed API documentation JSON file and annotate each class with derived
information for rendering (directive/service/module flags, deprecation, selectors).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategorize(args[0], outputFlag, apidocRepository, fileRepository, categorizeService)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default: overwrite the input file)")

	return &CategorizeCommand{
		CobraCommand: cmd,
	}
}

func runCategorize(
	docsPath string,
	outputPath string,
	apidocRepository apidoc.Repository,
	fileRepository file.Repository,
	categorizeService *categorize.CategorizeService,
) error {
	docs, err := apidocRepository.Read(docsPath)
	if err != nil {
		return eris.Wrapf(err, "failed to read docs file: %s", docsPath)
	}

	categorized := categorizeService.Categorize(docs)

	if outputPath == "" {
		outputPath = docsPath
	}

	var oldContent []byte
	if fileRepository.Exists(outputPath) {
		oldContent, err = fileRepository.Read(outputPath)
		if err != nil {
			return eris.Wrapf(err, "failed to read output file: %s", outputPath)
		}
	}

	err = apidocRepository.Write(outputPath, categorized)
	if err != nil {
		return eris.Wrapf(err, "failed to write docs file: %s", outputPath)
	}

	if len(oldContent) > 0 {
		newContent, err := fileRepository.Read(outputPath)
		if err != nil {
			return eris.Wrapf(err, "failed to read docs file: %s", outputPath)
		}
		if string(oldContent) != string(newContent) {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(oldContent), string(newContent), false)
			fmt.Println(dmp.DiffPrettyText(diffs))
		}
	}

	fmt.Printf("Categorized %d classes: %s\n", len(categorized), outputPath)
	return nil
}
