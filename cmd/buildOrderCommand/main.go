package buildOrderCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-aoki/kumitate/domain/service/orderMake"
)

type BuildOrderCommand struct {
	CobraCommand *cobra.Command
}

func NewBuildOrderCommand(orderMakeService *orderMake.OrderMakeService) *BuildOrderCommand {
	var packageNameFlag string

	cmd := &cobra.Command{
		Use:   "build-order [packageDir]",
		Short: "Compute the build order of a package's entry points",
		Long: `Discover the entry points of a package, extract cross-entry-point dependencies
from import statements, and print a dependency-respecting build order.
The result is also saved under .kumitate/build-order/.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := orderMakeService.Make(args[0], packageNameFlag)
			if err != nil {
				return err
			}

			for _, name := range order {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&packageNameFlag, "package-name", "n", "", "Package name as it appears in import statements (default: <import-scope>/<dir name>)")

	return &BuildOrderCommand{
		CobraCommand: cmd,
	}
}
