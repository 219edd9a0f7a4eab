package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylift/resourcekit/internal/app"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show which AWS principal the default-client factory binds to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			return err
		}

		identity, err := application.Factory.CallerIdentity(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Account: %s\nARN:     %s\nUserID:  %s\n",
			identity.Account, identity.ARN, identity.UserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
