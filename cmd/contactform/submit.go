package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goatkit/contactform/internal/config"
	"github.com/goatkit/contactform/internal/form"
	"github.com/goatkit/contactform/internal/thread"
)

type submitFlags struct {
	server   string
	category string
	name     string
	email    string

	description string
	blocking    bool

	message  string
	provider string
	volume   string

	text string
}

// printNotifier writes the submission outcome to the command's output, the
// terminal equivalent of the page's toasts.
type printNotifier struct {
	cmd *cobra.Command
}

func (n printNotifier) Success(msg string) { fmt.Fprintln(n.cmd.OutOrStdout(), msg) }
func (n printNotifier) Failure(msg string) { fmt.Fprintln(n.cmd.ErrOrStderr(), msg) }

func newSubmitCmd() *cobra.Command {
	flags := &submitFlags{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a contact form against a running server",
		Long: "submit drives the form controller from the terminal: pick a " +
			"category, fill its fields via flags, and post the result to the " +
			"contact form server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			category := thread.Category(flags.category)
			if !category.Valid() {
				return fmt.Errorf("unknown category %q (one of: bug, demo, feature, question, security)", flags.category)
			}

			controller := form.NewController(
				form.NewHTTPSender(flags.server),
				config.LoadLabels(),
				form.WithNotifier(printNotifier{cmd: cmd}),
				form.WithPageContext("cli://contactform/submit", ""),
			)

			controller.SetCategory(category)
			controller.SetName(flags.name)
			controller.SetEmail(flags.email)
			controller.SetBugDescription(flags.description)
			controller.SetBugIsBlocking(flags.blocking)
			controller.SetDemoMessage(flags.message)
			if flags.provider != "" {
				controller.SetDemoProvider(flags.provider)
			}
			if flags.volume != "" {
				controller.SetDemoVolume(flags.volume)
			}
			controller.SetFeatureRequest(flags.text)
			controller.SetQuestion(flags.text)
			controller.SetSecurityIssue(flags.text)

			return controller.Submit(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.server, "server", "http://localhost:8080", "contact form server URL")
	cmd.Flags().StringVar(&flags.category, "category", "", "form category: bug, demo, feature, question or security")
	cmd.Flags().StringVar(&flags.name, "name", "", "your name")
	cmd.Flags().StringVar(&flags.email, "email", "", "your email address")
	cmd.Flags().StringVar(&flags.description, "description", "", "bug description (bug)")
	cmd.Flags().BoolVar(&flags.blocking, "blocking", false, "the bug is preventing you from using the software (bug)")
	cmd.Flags().StringVar(&flags.message, "message", "", "free-text message (demo)")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "current provider value (demo)")
	cmd.Flags().StringVar(&flags.volume, "volume", "", "expected volume value (demo)")
	cmd.Flags().StringVar(&flags.text, "text", "", "free text (feature, question, security)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
