package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niriutils/nirictl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the nirictl configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a commented default config file to the standard location and
print its path. Fails when the file already exists.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.CreateDefault()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.DefaultPath())
	return nil
}
