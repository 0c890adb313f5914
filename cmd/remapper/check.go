//go:build !tinygo

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/profile"
)

var strict bool

var checkCmd = &cobra.Command{
	Use:   "check <profiles.yaml>",
	Short: "Validate a profile document and print the resulting table",
	Long: `Load, normalize and validate a profile document, then print the profile
table exactly as the remapper would build it.

Issues are printed as warnings; the entries they name are dropped or
defaulted at boot. With --strict any issue fails the command.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&strict, "strict", false, "Fail on any validation issue")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	doc, err := config.FileStore{Path: args[0]}.Load()
	if err != nil {
		return err
	}

	issues := config.Validate(doc)
	if issues != nil {
		printIssues(out, issues)
	}

	printTable(out, profile.Bind(doc))

	if strict && issues != nil {
		return errors.New("profile document has issues")
	}
	return nil
}

func printIssues(w io.Writer, err error) {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			fmt.Fprintf(w, "warning: %v\n", e)
		}
	} else {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
	fmt.Fprintln(w)
}

func printTable(w io.Writer, t *profile.Table) {
	d := t.Display()
	fmt.Fprintf(w, "display: %s %dx%d at 0x%02X, default layout %d\n\n",
		d.Type, d.Width, d.Height, d.Address, d.DefaultLayout)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLAYOUT\tMASK\tMAPPINGS")
	for _, p := range t.Profiles() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t0x%05X\t%s\n", p.ID, p.Name, p.Layout, p.Mask(), mappings(p))
	}
	_ = tw.Flush()
}

func mappings(p *profile.Profile) string {
	if p.IsPassthrough() {
		return "-"
	}
	s := ""
	for i, k := range p.Keys() {
		v, _ := p.Output(k)
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d->0x%X", k, v)
	}
	return s
}
