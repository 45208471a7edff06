// Command contactform runs the contact form service and ships a small
// client for submitting forms from the terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "contactform",
		Short: "Customer contact form service",
		Long: "contactform serves the customer contact form and forwards " +
			"submissions to the helpdesk as support threads.",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newSubmitCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
