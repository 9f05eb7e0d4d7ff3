package commands

import (
	"github.com/spf13/cobra"

	"planpaineis_propostas/internal/domain/format"
	"planpaineis_propostas/internal/printer"
)

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Apply a display mask to a value",
}

var maskCNPJCmd = &cobra.Command{
	Use:   "cnpj VALUE",
	Short: "Format a CNPJ as XX.XXX.XXX/XXXX-XX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.Info("%s\n", format.MaskCNPJ(args[0]))
		return nil
	},
}

var maskPhoneCmd = &cobra.Command{
	Use:   "phone VALUE",
	Short: "Format a phone number as (XX) XXXXX-XXXX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.Info("%s\n", format.MaskPhone(args[0]))
		return nil
	},
}

func init() {
	maskCmd.AddCommand(maskCNPJCmd, maskPhoneCmd)
	rootCmd.AddCommand(maskCmd)
}
