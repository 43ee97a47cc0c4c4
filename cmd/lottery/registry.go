package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRegistryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Lista as loterias do catálogo e suas fontes",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(nil)
			if err != nil {
				return err
			}

			p := newPrinter(os.Stdout, jsonOutput)
			return p.Registry(reg.All())
		},
	}
}
