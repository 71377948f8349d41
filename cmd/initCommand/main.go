package initCommand

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/t-aoki/kumitate/domain/repository/config"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new Kumitate project",
		Long:  `Initialize a new Kumitate project by creating a kumitate.yml configuration file in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := os.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "kumitate.yml")
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("kumitate.yml already exists in the current directory")
			}

			cfg := &config.Config{
				ImportScope:      "@myorg",
				MarkerFile:       "index.ts",
				SourceExtensions: []string{".ts"},
				Search: config.Search{
					Backend: "auto",
				},
			}

			err = configRepository.Write(configPath, cfg)
			if err != nil {
				return err
			}

			fmt.Println("Initialized Kumitate project. Created kumitate.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}
