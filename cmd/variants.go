package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylift/resourcekit/internal/app"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List registered resource variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VARIANT\tSERVICE\tIDENTIFIERS")
		for _, name := range application.Registry.Names() {
			desc, err := application.Registry.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", desc.Name, desc.ServiceName, strings.Join(desc.Identifiers, ", "))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
