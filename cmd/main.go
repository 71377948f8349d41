package cmd

import (
	"github.com/spf13/cobra"
	"github.com/t-aoki/kumitate/cmd/buildOrderCommand"
	"github.com/t-aoki/kumitate/cmd/categorizeCommand"
	"github.com/t-aoki/kumitate/cmd/entryPointsCommand"
	"github.com/t-aoki/kumitate/cmd/initCommand"
	"github.com/t-aoki/kumitate/cmd/versionCommand"
	"github.com/t-aoki/kumitate/domain/service/categorize"
	"github.com/t-aoki/kumitate/domain/service/configFindService"
	"github.com/t-aoki/kumitate/domain/service/entryPointScan"
	"github.com/t-aoki/kumitate/domain/service/orderMake"
	textsearchImpl "github.com/t-aoki/kumitate/infrastructure/external/textsearch"
	apidocRepo "github.com/t-aoki/kumitate/infrastructure/repository/apidoc"
	buildOrderRepo "github.com/t-aoki/kumitate/infrastructure/repository/buildOrder"
	configRepo "github.com/t-aoki/kumitate/infrastructure/repository/config"
	fileRepo "github.com/t-aoki/kumitate/infrastructure/repository/file"
	ksuidImpl "github.com/t-aoki/kumitate/infrastructure/system/ksuid"
	timerImpl "github.com/t-aoki/kumitate/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	cmd := &cobra.Command{
		Use:   "kumitate",
		Short: "A build/documentation pipeline helper for component libraries",
		Long: `Kumitate is a command-line tool for component library build pipelines.
It computes the build order of a package's secondary entry points and
annotates parsed API documentation for rendering.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	apidocRepository := apidocRepo.NewRepository()
	buildOrderRepository := buildOrderRepo.NewRepository()
	finderFactory := textsearchImpl.NewFinderFactory()
	ksuidGenerator := ksuidImpl.NewKsuidGenerator()
	timer := timerImpl.NewTimer()

	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	entryPointScanSrv := entryPointScan.NewEntryPointScanService(fileRepository)
	categorizeSrv := categorize.NewCategorizeService()
	orderMakeSrv := orderMake.NewOrderMakeService(
		configFindSrv,
		configRepository,
		entryPointScanSrv,
		finderFactory,
		buildOrderRepository,
		timer,
		ksuidGenerator,
	)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository).CobraCommand)
	cmd.AddCommand(entryPointsCommand.NewEntryPointsCommand(configFindSrv, configRepository, entryPointScanSrv).CobraCommand)
	cmd.AddCommand(buildOrderCommand.NewBuildOrderCommand(orderMakeSrv).CobraCommand)
	cmd.AddCommand(categorizeCommand.NewCategorizeCommand(apidocRepository, fileRepository, categorizeSrv).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
