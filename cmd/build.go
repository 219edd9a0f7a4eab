package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylift/resourcekit/internal/app"
)

var setValues []string

var buildCmd = &cobra.Command{
	Use:   "build <variant> [value...]",
	Short: "Construct a resource instance and display it",
	Long: `Construct an instance of a registered resource variant. Positional
values bind to identifiers in declared order; --set binds them by name.
A name given both ways takes the --set value.`,
	Example: `  resourcekit build Bucket photos
  resourcekit build Object b1 k1
  resourcekit build Object --set bucket_name=b1 --set key=k1 --output json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			return err
		}

		named, err := app.ParseNamedArgs(setValues)
		if err != nil {
			return err
		}

		positional := make([]any, 0, len(args)-1)
		for _, arg := range args[1:] {
			positional = append(positional, arg)
		}

		resource, err := application.BuildResource(cmd.Context(), args[0], positional, named)
		if err != nil {
			return err
		}

		return application.Report(cmd.Context(), resource)
	},
}

func init() {
	buildCmd.Flags().StringArrayVar(&setValues, "set", nil, "Identifier value by name (name=value, repeatable)")
	buildCmd.Flags().StringP("output", "o", "", "Output format (text, json)")
	viper.BindPFlag("settings.reporter", buildCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(buildCmd)
}
