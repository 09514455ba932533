package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/ttscatalog/cmd/ttscatalog/cmd/classify"
	"github.com/agentstation/ttscatalog/cmd/ttscatalog/cmd/generate"
	"github.com/agentstation/ttscatalog/cmd/ttscatalog/cmd/list"
	"github.com/agentstation/ttscatalog/cmd/ttscatalog/cmd/publish"
	"github.com/agentstation/ttscatalog/cmd/ttscatalog/cmd/version"
)

// NewGenerateCommand creates the generate command with app dependencies.
func (a *App) NewGenerateCommand() *cobra.Command {
	return generate.NewCommand(a)
}

// NewClassifyCommand creates the classify command with app dependencies.
func (a *App) NewClassifyCommand() *cobra.Command {
	return classify.NewCommand(a)
}

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewPublishCommand creates the publish command with app dependencies.
func (a *App) NewPublishCommand() *cobra.Command {
	return publish.NewCommand(a)
}

// NewVersionCommand creates the version command with app dependencies.
func (a *App) NewVersionCommand() *cobra.Command {
	return version.NewCommand(a)
}
