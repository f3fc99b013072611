package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/internal/cli/data"
	"github.com/crewdeck/crewdeck/internal/cli/member"
	"github.com/crewdeck/crewdeck/internal/cli/project"
	"github.com/crewdeck/crewdeck/internal/cli/task"
)

var rootCmd = &cobra.Command{
	Use:   "crewdeck",
	Short: "Crewdeck - project and team tracking from the terminal",
	Long: `Crewdeck tracks projects, their team members and their tasks,
stored locally in a single-file database.`,
}

func init() {
	rootCmd.AddCommand(project.Cmd())
	rootCmd.AddCommand(member.Cmd())
	rootCmd.AddCommand(task.Cmd())
	rootCmd.AddCommand(data.Cmd())
}

func Execute() error {
	return rootCmd.Execute()
}
