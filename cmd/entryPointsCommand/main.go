package entryPointsCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-aoki/kumitate/domain/repository/config"
	"github.com/t-aoki/kumitate/domain/service/configFindService"
	"github.com/t-aoki/kumitate/domain/service/entryPointScan"
)

type EntryPointsCommand struct {
	CobraCommand *cobra.Command
}

func NewEntryPointsCommand(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	entryPointScanService *entryPointScan.EntryPointScanService,
) *EntryPointsCommand {
	cmd := &cobra.Command{
		Use:   "entry-points [packageDir]",
		Short: "List entry points of a package",
		Long:  `List the secondary entry points of a package, defined as subdirectories containing the configured marker file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntryPoints(args[0], configFindService, configRepository, entryPointScanService)
		},
	}

	return &EntryPointsCommand{
		CobraCommand: cmd,
	}
}

func runEntryPoints(
	packageDir string,
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	entryPointScanService *entryPointScan.EntryPointScanService,
) error {
	configPath, err := configFindService.FindConfig()
	if err != nil {
		return err
	}

	cfg, err := configRepository.Read(configPath)
	if err != nil {
		return err
	}

	entryPoints, err := entryPointScanService.Scan(packageDir, cfg.GetMarkerFile())
	if err != nil {
		return err
	}

	for _, entryPoint := range entryPoints {
		fmt.Println(entryPoint)
	}
	return nil
}
